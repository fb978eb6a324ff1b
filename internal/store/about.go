package store

import (
	"context"
	"time"
)

const listAboutSections = `
SELECT id, section, title, body, position, created_at, updated_at
FROM about_sections ORDER BY position, id
`

func (q *Queries) ListAboutSections(ctx context.Context) ([]AboutSection, error) {
	rows, err := q.db.QueryContext(ctx, listAboutSections)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AboutSection
	for rows.Next() {
		var s AboutSection
		if err := rows.Scan(&s.ID, &s.Section, &s.Title, &s.Body, &s.Position, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const getAboutSection = `
SELECT id, section, title, body, position, created_at, updated_at
FROM about_sections WHERE id = ?
`

func (q *Queries) GetAboutSection(ctx context.Context, id int64) (AboutSection, error) {
	row := q.db.QueryRowContext(ctx, getAboutSection, id)
	var s AboutSection
	err := row.Scan(&s.ID, &s.Section, &s.Title, &s.Body, &s.Position, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

const createAboutSection = `
INSERT INTO about_sections (section, title, body, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, section, title, body, position, created_at, updated_at
`

type CreateAboutSectionParams struct {
	Section  string
	Title    string
	Body     string
	Position int64
}

func (q *Queries) CreateAboutSection(ctx context.Context, arg CreateAboutSectionParams) (AboutSection, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, createAboutSection,
		arg.Section, arg.Title, arg.Body, arg.Position, now, now)
	var s AboutSection
	err := row.Scan(&s.ID, &s.Section, &s.Title, &s.Body, &s.Position, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

const updateAboutSection = `
UPDATE about_sections
SET section = ?, title = ?, body = ?, position = ?, updated_at = ?
WHERE id = ?
`

type UpdateAboutSectionParams struct {
	ID       int64
	Section  string
	Title    string
	Body     string
	Position int64
}

func (q *Queries) UpdateAboutSection(ctx context.Context, arg UpdateAboutSectionParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateAboutSection,
		arg.Section, arg.Title, arg.Body, arg.Position, time.Now(), arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteAboutSection = `
DELETE FROM about_sections WHERE id = ?
`

func (q *Queries) DeleteAboutSection(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteAboutSection, id)
	return err
}
