package store

import (
	"context"
	"database/sql"
	"time"
)

const listExperience = `
SELECT id, company, role, location, start_date, end_date, summary, position, created_at, updated_at
FROM experience ORDER BY position, id DESC
`

func (q *Queries) ListExperience(ctx context.Context) ([]Experience, error) {
	rows, err := q.db.QueryContext(ctx, listExperience)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Experience
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.ID, &e.Company, &e.Role, &e.Location, &e.StartDate, &e.EndDate,
			&e.Summary, &e.Position, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const getExperience = `
SELECT id, company, role, location, start_date, end_date, summary, position, created_at, updated_at
FROM experience WHERE id = ?
`

func (q *Queries) GetExperience(ctx context.Context, id int64) (Experience, error) {
	row := q.db.QueryRowContext(ctx, getExperience, id)
	var e Experience
	err := row.Scan(&e.ID, &e.Company, &e.Role, &e.Location, &e.StartDate, &e.EndDate,
		&e.Summary, &e.Position, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

const createExperience = `
INSERT INTO experience (company, role, location, start_date, end_date, summary, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, company, role, location, start_date, end_date, summary, position, created_at, updated_at
`

type CreateExperienceParams struct {
	Company   string
	Role      string
	Location  string
	StartDate string
	EndDate   sql.NullString
	Summary   string
	Position  int64
}

func (q *Queries) CreateExperience(ctx context.Context, arg CreateExperienceParams) (Experience, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, createExperience,
		arg.Company, arg.Role, arg.Location, arg.StartDate, arg.EndDate, arg.Summary, arg.Position, now, now)
	var e Experience
	err := row.Scan(&e.ID, &e.Company, &e.Role, &e.Location, &e.StartDate, &e.EndDate,
		&e.Summary, &e.Position, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

const updateExperience = `
UPDATE experience
SET company = ?, role = ?, location = ?, start_date = ?, end_date = ?, summary = ?, position = ?, updated_at = ?
WHERE id = ?
`

type UpdateExperienceParams struct {
	ID        int64
	Company   string
	Role      string
	Location  string
	StartDate string
	EndDate   sql.NullString
	Summary   string
	Position  int64
}

func (q *Queries) UpdateExperience(ctx context.Context, arg UpdateExperienceParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateExperience,
		arg.Company, arg.Role, arg.Location, arg.StartDate, arg.EndDate, arg.Summary, arg.Position, time.Now(), arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteExperience = `
DELETE FROM experience WHERE id = ?
`

func (q *Queries) DeleteExperience(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteExperience, id)
	return err
}
