// Package diagnostics records terminal UI failures for later inspection.
package diagnostics

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a diagnostic event.
type Kind string

const (
	KindLoadFailed     Kind = "load_failed"
	KindMutationFailed Kind = "mutation_failed"
	KindUIError        Kind = "ui_error"
	KindPanic          Kind = "panic"
)

// Event is one recorded failure.
type Event struct {
	ID        string
	Kind      Kind
	Message   string
	RequestID string
	CreatedAt time.Time
}

// Store persists diagnostic events.
type Store interface {
	PutEvent(ctx context.Context, event Event) error
}

// Recorder accepts failures from handlers and the board service.
type Recorder interface {
	Record(ctx context.Context, kind Kind, message string)
}

type requestIDKey struct{}

// WithRequestID attaches the correlation id used for recorded events.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDKey{}, strings.TrimSpace(requestID))
}

// RequestIDFromContext returns the correlation id, or "-".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return "-"
	}
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok && rid != "" {
		return rid
	}
	return "-"
}

// LogRecorder logs every event and, when a store is configured, persists it.
type LogRecorder struct {
	logger *log.Logger
	store  Store
	now    func() time.Time
	newID  func() string
}

// NewRecorder builds a recorder. A nil logger uses the standard logger.
func NewRecorder(logger *log.Logger, store Store) *LogRecorder {
	if logger == nil {
		logger = log.Default()
	}
	return &LogRecorder{
		logger: logger,
		store:  store,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Record logs and stores one event. Store failures are logged only.
func (r *LogRecorder) Record(ctx context.Context, kind Kind, message string) {
	if r == nil {
		return
	}
	event := Event{
		ID:        r.newID(),
		Kind:      kind,
		Message:   message,
		RequestID: RequestIDFromContext(ctx),
		CreatedAt: r.now().UTC(),
	}
	r.logger.Printf("diagnostic event id=%s kind=%s request_id=%s message=%q", event.ID, event.Kind, event.RequestID, event.Message)
	if r.store == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := r.store.PutEvent(context.WithoutCancel(ctx), event); err != nil {
		r.logger.Printf("diagnostic store failed id=%s kind=%s err=%v", event.ID, event.Kind, err)
	}
}

// Discard drops every event.
type Discard struct{}

// Record implements Recorder.
func (Discard) Record(context.Context, Kind, string) {}
