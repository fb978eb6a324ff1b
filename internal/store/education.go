package store

import (
	"context"
	"database/sql"
	"time"
)

const listEducation = `
SELECT id, institution, degree, field, start_year, end_year, summary, position, created_at, updated_at
FROM education ORDER BY position, id DESC
`

func (q *Queries) ListEducation(ctx context.Context) ([]Education, error) {
	rows, err := q.db.QueryContext(ctx, listEducation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Education
	for rows.Next() {
		var e Education
		if err := rows.Scan(&e.ID, &e.Institution, &e.Degree, &e.Field, &e.StartYear, &e.EndYear,
			&e.Summary, &e.Position, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const getEducation = `
SELECT id, institution, degree, field, start_year, end_year, summary, position, created_at, updated_at
FROM education WHERE id = ?
`

func (q *Queries) GetEducation(ctx context.Context, id int64) (Education, error) {
	row := q.db.QueryRowContext(ctx, getEducation, id)
	var e Education
	err := row.Scan(&e.ID, &e.Institution, &e.Degree, &e.Field, &e.StartYear, &e.EndYear,
		&e.Summary, &e.Position, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

const createEducation = `
INSERT INTO education (institution, degree, field, start_year, end_year, summary, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, institution, degree, field, start_year, end_year, summary, position, created_at, updated_at
`

type CreateEducationParams struct {
	Institution string
	Degree      string
	Field       string
	StartYear   int64
	EndYear     sql.NullInt64
	Summary     string
	Position    int64
}

func (q *Queries) CreateEducation(ctx context.Context, arg CreateEducationParams) (Education, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, createEducation,
		arg.Institution, arg.Degree, arg.Field, arg.StartYear, arg.EndYear, arg.Summary, arg.Position, now, now)
	var e Education
	err := row.Scan(&e.ID, &e.Institution, &e.Degree, &e.Field, &e.StartYear, &e.EndYear,
		&e.Summary, &e.Position, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

const updateEducation = `
UPDATE education
SET institution = ?, degree = ?, field = ?, start_year = ?, end_year = ?, summary = ?, position = ?, updated_at = ?
WHERE id = ?
`

type UpdateEducationParams struct {
	ID          int64
	Institution string
	Degree      string
	Field       string
	StartYear   int64
	EndYear     sql.NullInt64
	Summary     string
	Position    int64
}

func (q *Queries) UpdateEducation(ctx context.Context, arg UpdateEducationParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateEducation,
		arg.Institution, arg.Degree, arg.Field, arg.StartYear, arg.EndYear, arg.Summary, arg.Position, time.Now(), arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteEducation = `
DELETE FROM education WHERE id = ?
`

func (q *Queries) DeleteEducation(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteEducation, id)
	return err
}
