package store

import (
	"context"
	"time"
)

const getConfig = `
SELECT key, value, updated_at FROM config WHERE key = ?
`

func (q *Queries) GetConfig(ctx context.Context, key string) (ConfigEntry, error) {
	row := q.db.QueryRowContext(ctx, getConfig, key)
	var c ConfigEntry
	err := row.Scan(&c.Key, &c.Value, &c.UpdatedAt)
	return c, err
}

const setConfig = `
INSERT INTO config (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

func (q *Queries) SetConfig(ctx context.Context, key, value string) error {
	_, err := q.db.ExecContext(ctx, setConfig, key, value, time.Now())
	return err
}

const listConfig = `
SELECT key, value, updated_at FROM config ORDER BY key
`

func (q *Queries) ListConfig(ctx context.Context) ([]ConfigEntry, error) {
	rows, err := q.db.QueryContext(ctx, listConfig)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ConfigEntry
	for rows.Next() {
		var c ConfigEntry
		if err := rows.Scan(&c.Key, &c.Value, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
