package logging

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/gau7ab/folio-go/internal/store"
)

// testDB creates a temporary test database with migrations applied.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "folio-logging-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}

	return db, cleanup
}

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func TestEventLogHandlerWritesWarnAndAbove(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	handler := NewEventLogHandler(discardHandler{}, db)
	logger := slog.New(handler)

	logger.Info("just info, not persisted")
	logger.Warn("something odd", "category", store.EventCategoryAuth, "ip", "203.0.113.9")
	logger.Error("something broke")

	events, err := store.New(db).ListEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	// Newest first.
	if events[0].Level != store.EventLevelError {
		t.Errorf("level = %q, want %q", events[0].Level, store.EventLevelError)
	}
	if events[1].Level != store.EventLevelWarning {
		t.Errorf("level = %q, want %q", events[1].Level, store.EventLevelWarning)
	}
	if events[1].Category != store.EventCategoryAuth {
		t.Errorf("category = %q, want %q", events[1].Category, store.EventCategoryAuth)
	}
	if events[1].Metadata != `{"ip":"203.0.113.9"}` {
		t.Errorf("metadata = %q", events[1].Metadata)
	}
}

func TestExtractCategoryInference(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"login failed for user", store.EventCategoryAuth},
		{"contact message received", store.EventCategoryContact},
		{"cache cleared", store.EventCategoryCache},
		{"photo upload rejected", store.EventCategoryMedia},
		{"disk almost full", store.EventCategorySystem},
	}

	for _, tt := range tests {
		r := slog.NewRecord(time.Now(), slog.LevelWarn, tt.msg, 0)
		if got := extractCategory(r); got != tt.want {
			t.Errorf("extractCategory(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}
