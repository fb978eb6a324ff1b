package store

import (
	"context"
	"time"
)

const createMessage = `
INSERT INTO messages (name, email, subject, body, ip_address, country, browser, os, device, is_read, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)
RETURNING id, name, email, subject, body, ip_address, country, browser, os, device, is_read, created_at
`

type CreateMessageParams struct {
	Name      string
	Email     string
	Subject   string
	Body      string
	IPAddress string
	Country   string
	Browser   string
	OS        string
	Device    string
}

func (q *Queries) CreateMessage(ctx context.Context, arg CreateMessageParams) (Message, error) {
	row := q.db.QueryRowContext(ctx, createMessage,
		arg.Name, arg.Email, arg.Subject, arg.Body,
		arg.IPAddress, arg.Country, arg.Browser, arg.OS, arg.Device, time.Now())
	var m Message
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body,
		&m.IPAddress, &m.Country, &m.Browser, &m.OS, &m.Device, &m.IsRead, &m.CreatedAt)
	return m, err
}

const listMessages = `
SELECT id, name, email, subject, body, ip_address, country, browser, os, device, is_read, created_at
FROM messages ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListMessages(ctx context.Context) ([]Message, error) {
	rows, err := q.db.QueryContext(ctx, listMessages)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body,
			&m.IPAddress, &m.Country, &m.Browser, &m.OS, &m.Device, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

const getMessage = `
SELECT id, name, email, subject, body, ip_address, country, browser, os, device, is_read, created_at
FROM messages WHERE id = ?
`

func (q *Queries) GetMessage(ctx context.Context, id int64) (Message, error) {
	row := q.db.QueryRowContext(ctx, getMessage, id)
	var m Message
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body,
		&m.IPAddress, &m.Country, &m.Browser, &m.OS, &m.Device, &m.IsRead, &m.CreatedAt)
	return m, err
}

const markMessageRead = `
UPDATE messages SET is_read = 1 WHERE id = ?
`

func (q *Queries) MarkMessageRead(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, markMessageRead, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const countUnreadMessages = `
SELECT COUNT(*) FROM messages WHERE is_read = 0
`

func (q *Queries) CountUnreadMessages(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countUnreadMessages).Scan(&n)
	return n, err
}

const deleteMessage = `
DELETE FROM messages WHERE id = ?
`

func (q *Queries) DeleteMessage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteMessage, id)
	return err
}
