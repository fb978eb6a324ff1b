package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "folio-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}

func TestCreateUser(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	user, err := q.CreateUser(ctx, CreateUserParams{
		Email:        "test@example.com",
		PasswordHash: "hashed-password",
		Name:         "Test User",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected non-zero user ID")
	}
	if user.Email != "test@example.com" {
		t.Errorf("email = %q, want %q", user.Email, "test@example.com")
	}

	got, err := q.GetUserByEmail(ctx, "test@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID = %d, want %d", got.ID, user.ID)
	}

	_, err = q.GetUserByEmail(ctx, "missing@example.com")
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestSkillCRUD(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	skill, err := q.CreateSkill(ctx, CreateSkillParams{
		Name:     "Go",
		Category: "Languages",
		Level:    90,
		Position: 1,
	})
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}

	items, err := q.ListSkills(ctx)
	if err != nil {
		t.Fatalf("ListSkills: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(items))
	}

	affected, err := q.UpdateSkill(ctx, UpdateSkillParams{
		ID:       skill.ID,
		Name:     "Golang",
		Category: "Languages",
		Level:    95,
		Position: 1,
	})
	if err != nil {
		t.Fatalf("UpdateSkill: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	got, err := q.GetSkill(ctx, skill.ID)
	if err != nil {
		t.Fatalf("GetSkill: %v", err)
	}
	if got.Name != "Golang" {
		t.Errorf("name = %q, want %q", got.Name, "Golang")
	}

	// Updating a nonexistent row affects nothing.
	affected, err = q.UpdateSkill(ctx, UpdateSkillParams{ID: 9999, Name: "x", Category: "y"})
	if err != nil {
		t.Fatalf("UpdateSkill nonexistent: %v", err)
	}
	if affected != 0 {
		t.Errorf("affected = %d, want 0", affected)
	}

	if err := q.DeleteSkill(ctx, skill.ID); err != nil {
		t.Fatalf("DeleteSkill: %v", err)
	}
	// Deleting again is a no-op.
	if err := q.DeleteSkill(ctx, skill.ID); err != nil {
		t.Fatalf("DeleteSkill repeat: %v", err)
	}

	items, err = q.ListSkills(ctx)
	if err != nil {
		t.Fatalf("ListSkills: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected 0 skills, got %d", len(items))
	}
}

func TestProjectSlugUnique(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	_, err := q.CreateProject(ctx, CreateProjectParams{Title: "One", Slug: "one"})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	_, err = q.CreateProject(ctx, CreateProjectParams{Title: "Two", Slug: "one"})
	if err == nil {
		t.Error("expected unique constraint violation for duplicate slug")
	}
}

func TestMessages(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	msg, err := q.CreateMessage(ctx, CreateMessageParams{
		Name:      "Visitor",
		Email:     "visitor@example.com",
		Subject:   "Hi",
		Body:      "Nice site",
		IPAddress: "203.0.113.10",
		Country:   "NL",
		Browser:   "Firefox",
		OS:        "Linux",
	})
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if msg.IsRead {
		t.Error("new message should be unread")
	}

	n, err := q.CountUnreadMessages(ctx)
	if err != nil {
		t.Fatalf("CountUnreadMessages: %v", err)
	}
	if n != 1 {
		t.Errorf("unread = %d, want 1", n)
	}

	affected, err := q.MarkMessageRead(ctx, msg.ID)
	if err != nil {
		t.Fatalf("MarkMessageRead: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	n, err = q.CountUnreadMessages(ctx)
	if err != nil {
		t.Fatalf("CountUnreadMessages: %v", err)
	}
	if n != 0 {
		t.Errorf("unread = %d, want 0", n)
	}
}

func TestTrekPhotosCascade(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	trek, err := q.CreateTrek(ctx, CreateTrekParams{Name: "Annapurna Circuit", Slug: "annapurna-circuit"})
	if err != nil {
		t.Fatalf("CreateTrek: %v", err)
	}

	_, err = q.CreateTrekPhoto(ctx, CreateTrekPhotoParams{
		TrekID:   trek.ID,
		FilePath: "uploads/treks/abc.jpg",
		Width:    1600,
		Height:   1200,
	})
	if err != nil {
		t.Fatalf("CreateTrekPhoto: %v", err)
	}

	if err := q.DeleteTrek(ctx, trek.ID); err != nil {
		t.Fatalf("DeleteTrek: %v", err)
	}

	photos, err := q.ListTrekPhotos(ctx, trek.ID)
	if err != nil {
		t.Fatalf("ListTrekPhotos: %v", err)
	}
	if len(photos) != 0 {
		t.Errorf("expected photos removed with trek, got %d", len(photos))
	}
}

func TestEventsPrune(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if err := q.CreateEvent(ctx, CreateEventParams{
		Level:    "WARN",
		Category: "auth",
		Message:  "failed login attempt",
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	events, err := q.ListEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Metadata != "{}" {
		t.Errorf("metadata = %q, want empty object", events[0].Metadata)
	}

	// Cutoff in the past removes nothing.
	removed, err := q.PruneEventsBefore(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("PruneEventsBefore: %v", err)
	}
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}

	removed, err = q.PruneEventsBefore(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("PruneEventsBefore: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
}

func TestSeed(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := Seed(ctx, db, "admin@example.com"); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	// Seeding twice is safe.
	if err := Seed(ctx, db, "admin@example.com"); err != nil {
		t.Fatalf("Seed repeat: %v", err)
	}

	q := New(db)
	user, err := q.GetUserByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if user.Name != DefaultAdminName {
		t.Errorf("name = %q, want %q", user.Name, DefaultAdminName)
	}
}
