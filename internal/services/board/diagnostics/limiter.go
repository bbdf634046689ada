package diagnostics

import (
	"golang.org/x/time/rate"
)

// Limiter bounds how often browser error reports are accepted.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter allows perSecond reports with the given burst. A
// non-positive rate disables limiting.
func NewLimiter(perSecond float64, burst int) *Limiter {
	if perSecond <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Allow reports whether one more report fits the budget.
func (l *Limiter) Allow() bool {
	if l == nil || l.limiter == nil {
		return true
	}
	return l.limiter.Allow()
}
