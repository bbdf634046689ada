// Package notice models the single banner message shown on the board.
package notice

import (
	"strings"
	"sync"
	"time"
)

// AutoHide is how long a banner stays visible after it is shown.
const AutoHide = 5 * time.Second

// Kind classifies banner presentation.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// ParseKind normalizes raw into a known kind.
func ParseKind(raw string) (Kind, bool) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	switch kind {
	case KindInfo, KindSuccess, KindError:
		return kind, true
	default:
		return "", false
	}
}

// Notice is one banner message. Key names a localized catalog entry;
// Text is literal copy (server-provided messages, UI error text) and is
// used when Key is empty.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key,omitempty"`
	Text string `json:"text,omitempty"`
}

// Info returns an informational notice for a catalog key.
func Info(key string) Notice { return Notice{Kind: KindInfo, Key: key} }

// Success returns a success notice with literal text.
func Success(text string) Notice { return Notice{Kind: KindSuccess, Text: text} }

// Error returns an error notice for a catalog key.
func Error(key string) Notice { return Notice{Kind: KindError, Key: key} }

// ErrorText returns an error notice with literal text.
func ErrorText(text string) Notice { return Notice{Kind: KindError, Text: text} }

// Valid reports whether n has a known kind. Empty text is allowed: the
// API may answer with an empty message and the banner still shows.
func (n Notice) Valid() bool {
	_, ok := ParseKind(string(n.Kind))
	return ok
}

// Banner collects the notices issued while handling one request.
// Only the most recent notice is shown.
type Banner struct {
	mu      sync.Mutex
	current Notice
	set     bool
}

// Notify replaces the visible notice. Invalid notices are ignored.
func (b *Banner) Notify(n Notice) {
	if b == nil || !n.Valid() {
		return
	}
	n.Kind, _ = ParseKind(string(n.Kind))
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = n
	b.set = true
}

// Current returns the visible notice, if any.
func (b *Banner) Current() (Notice, bool) {
	if b == nil {
		return Notice{}, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current, b.set
}
