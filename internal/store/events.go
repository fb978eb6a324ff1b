package store

import (
	"context"
	"database/sql"
	"time"
)

// Event levels.
const (
	EventLevelError   = "ERROR"
	EventLevelWarning = "WARNING"
	EventLevelInfo    = "INFO"
)

// Event categories.
const (
	EventCategoryAuth    = "auth"
	EventCategoryContent = "content"
	EventCategoryContact = "contact"
	EventCategoryConfig  = "config"
	EventCategoryCache   = "cache"
	EventCategoryMedia   = "media"
	EventCategorySystem  = "system"
)

const createEvent = `
INSERT INTO events (level, category, message, user_id, metadata, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`

type CreateEventParams struct {
	Level    string
	Category string
	Message  string
	UserID   sql.NullInt64
	Metadata string
}

func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	metadata := arg.Metadata
	if metadata == "" {
		metadata = "{}"
	}
	_, err := q.db.ExecContext(ctx, createEvent,
		arg.Level, arg.Category, arg.Message, arg.UserID, metadata, time.Now())
	return err
}

const listEvents = `
SELECT id, level, category, message, user_id, metadata, created_at
FROM events ORDER BY id DESC LIMIT ?
`

func (q *Queries) ListEvents(ctx context.Context, limit int64) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx, listEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.UserID, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const pruneEventsBefore = `
DELETE FROM events WHERE created_at < ?
`

func (q *Queries) PruneEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, pruneEventsBefore, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
