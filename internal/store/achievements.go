package store

import (
	"context"
	"time"
)

const listAchievements = `
SELECT id, title, issuer, awarded_on, summary, position, created_at, updated_at
FROM achievements ORDER BY position, id DESC
`

func (q *Queries) ListAchievements(ctx context.Context) ([]Achievement, error) {
	rows, err := q.db.QueryContext(ctx, listAchievements)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Achievement
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(&a.ID, &a.Title, &a.Issuer, &a.AwardedOn, &a.Summary,
			&a.Position, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

const getAchievement = `
SELECT id, title, issuer, awarded_on, summary, position, created_at, updated_at
FROM achievements WHERE id = ?
`

func (q *Queries) GetAchievement(ctx context.Context, id int64) (Achievement, error) {
	row := q.db.QueryRowContext(ctx, getAchievement, id)
	var a Achievement
	err := row.Scan(&a.ID, &a.Title, &a.Issuer, &a.AwardedOn, &a.Summary,
		&a.Position, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

const createAchievement = `
INSERT INTO achievements (title, issuer, awarded_on, summary, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, title, issuer, awarded_on, summary, position, created_at, updated_at
`

type CreateAchievementParams struct {
	Title     string
	Issuer    string
	AwardedOn string
	Summary   string
	Position  int64
}

func (q *Queries) CreateAchievement(ctx context.Context, arg CreateAchievementParams) (Achievement, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, createAchievement,
		arg.Title, arg.Issuer, arg.AwardedOn, arg.Summary, arg.Position, now, now)
	var a Achievement
	err := row.Scan(&a.ID, &a.Title, &a.Issuer, &a.AwardedOn, &a.Summary,
		&a.Position, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

const updateAchievement = `
UPDATE achievements
SET title = ?, issuer = ?, awarded_on = ?, summary = ?, position = ?, updated_at = ?
WHERE id = ?
`

type UpdateAchievementParams struct {
	ID        int64
	Title     string
	Issuer    string
	AwardedOn string
	Summary   string
	Position  int64
}

func (q *Queries) UpdateAchievement(ctx context.Context, arg UpdateAchievementParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateAchievement,
		arg.Title, arg.Issuer, arg.AwardedOn, arg.Summary, arg.Position, time.Now(), arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteAchievement = `
DELETE FROM achievements WHERE id = ?
`

func (q *Queries) DeleteAchievement(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteAchievement, id)
	return err
}
