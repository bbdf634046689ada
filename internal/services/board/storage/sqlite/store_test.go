package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/capabilityboard/internal/services/board/diagnostics"
	_ "modernc.org/sqlite"
)

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store
}

func listEvents(t *testing.T, store *Store, limit int) []diagnostics.Event {
	t.Helper()
	rows, err := store.sqlDB.QueryContext(
		context.Background(),
		`SELECT id, kind, message, request_id, created_at
		 FROM ui_events
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		t.Fatalf("query ui events: %v", err)
	}
	defer rows.Close()

	var events []diagnostics.Event
	for rows.Next() {
		var event diagnostics.Event
		var kind string
		var createdAt int64
		if err := rows.Scan(&event.ID, &kind, &event.Message, &event.RequestID, &createdAt); err != nil {
			t.Fatalf("scan ui event: %v", err)
		}
		event.Kind = diagnostics.Kind(kind)
		event.CreatedAt = time.UnixMilli(createdAt).UTC()
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("iterate ui events: %v", err)
	}
	return events
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "board.db")
	openStore(t, path)

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	var name string
	if err := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'ui_events'`).Scan(&name); err != nil {
		t.Fatalf("ui_events table missing: %v", err)
	}
}

func TestOpenTwiceKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	if err := first.PutEvent(ctx, diagnostics.Event{ID: "e-1", Kind: diagnostics.KindUIError, Message: "boom", RequestID: "r"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second := openStore(t, path)
	events := listEvents(t, second, 10)
	if len(events) != 1 || events[0].ID != "e-1" {
		t.Fatalf("events = %+v", events)
	}
}

func TestEventRoundTripNewestFirst(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "board.db"))
	ctx := context.Background()
	base := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	for i, kind := range []diagnostics.Kind{diagnostics.KindLoadFailed, diagnostics.KindMutationFailed, diagnostics.KindPanic} {
		event := diagnostics.Event{
			ID:        "e-" + string(rune('a'+i)),
			Kind:      kind,
			Message:   string(kind),
			RequestID: "req",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.PutEvent(ctx, event); err != nil {
			t.Fatalf("put %d: %v", i, err)
		}
	}

	events := listEvents(t, store, 2)
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].ID != "e-c" || events[1].ID != "e-b" {
		t.Fatalf("order = %s,%s", events[0].ID, events[1].ID)
	}
	if events[0].Kind != diagnostics.KindPanic {
		t.Fatalf("kind = %q", events[0].Kind)
	}
	if !events[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("created_at = %v", events[0].CreatedAt)
	}
}

func TestPutEventValidation(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "board.db"))
	ctx := context.Background()

	if err := store.PutEvent(ctx, diagnostics.Event{Kind: diagnostics.KindUIError}); err == nil {
		t.Fatal("expected missing id error")
	}
	if err := store.PutEvent(ctx, diagnostics.Event{ID: "x"}); err == nil {
		t.Fatal("expected missing kind error")
	}
	if err := store.PutEvent(ctx, diagnostics.Event{ID: "dup", Kind: diagnostics.KindUIError}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.PutEvent(ctx, diagnostics.Event{ID: "dup", Kind: diagnostics.KindUIError}); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestRecorderPersistsThroughStore(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "board.db"))
	recorder := diagnostics.NewRecorder(nil, store)
	ctx := diagnostics.WithRequestID(context.Background(), "req-9")

	recorder.Record(ctx, diagnostics.KindUIError, "UI error: x is undefined")

	events := listEvents(t, store, 10)
	if len(events) != 1 || events[0].RequestID != "req-9" || events[0].Message != "UI error: x is undefined" {
		t.Fatalf("events = %+v", events)
	}
}

func TestNilStoreErrors(t *testing.T) {
	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("close nil: %v", err)
	}
	if err := store.PutEvent(context.Background(), diagnostics.Event{ID: "x", Kind: "k"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestOpenAppliesConnectionPragmas(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "board.db"))

	var busyTimeout int
	if err := store.sqlDB.QueryRow(`PRAGMA busy_timeout`).Scan(&busyTimeout); err != nil {
		t.Fatalf("busy_timeout: %v", err)
	}
	if busyTimeout <= 0 {
		t.Fatalf("busy_timeout = %d, want > 0", busyTimeout)
	}
	var journalMode string
	if err := store.sqlDB.QueryRow(`PRAGMA journal_mode`).Scan(&journalMode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Fatalf("journal_mode = %q, want wal", journalMode)
	}
}

func TestPutEventConcurrentWriters(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "board.db"))
	ctx := context.Background()

	const writers = 32
	const perWriter = 10
	var wg sync.WaitGroup
	errs := make(chan error, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				event := diagnostics.Event{
					ID:      fmt.Sprintf("w%d-%d", w, i),
					Kind:    diagnostics.KindUIError,
					Message: "concurrent",
				}
				if err := store.PutEvent(ctx, event); err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	failed := 0
	var first error
	for err := range errs {
		if first == nil {
			first = err
		}
		failed++
	}
	if failed > 0 {
		t.Fatalf("failed inserts = %d/%d, first = %v", failed, writers*perWriter, first)
	}

	var count int
	if err := store.sqlDB.QueryRow(`SELECT COUNT(*) FROM ui_events`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != writers*perWriter {
		t.Fatalf("count = %d, want %d", count, writers*perWriter)
	}
}
