package store

import (
	"context"
	"time"
)

const listSkills = `
SELECT id, name, category, level, position, created_at, updated_at
FROM skills ORDER BY category, position, id
`

func (q *Queries) ListSkills(ctx context.Context) ([]Skill, error) {
	rows, err := q.db.QueryContext(ctx, listSkills)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.Position, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const getSkill = `
SELECT id, name, category, level, position, created_at, updated_at
FROM skills WHERE id = ?
`

func (q *Queries) GetSkill(ctx context.Context, id int64) (Skill, error) {
	row := q.db.QueryRowContext(ctx, getSkill, id)
	var s Skill
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.Position, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

const createSkill = `
INSERT INTO skills (name, category, level, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, name, category, level, position, created_at, updated_at
`

type CreateSkillParams struct {
	Name     string
	Category string
	Level    int64
	Position int64
}

func (q *Queries) CreateSkill(ctx context.Context, arg CreateSkillParams) (Skill, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, createSkill,
		arg.Name, arg.Category, arg.Level, arg.Position, now, now)
	var s Skill
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.Position, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

const updateSkill = `
UPDATE skills
SET name = ?, category = ?, level = ?, position = ?, updated_at = ?
WHERE id = ?
`

type UpdateSkillParams struct {
	ID       int64
	Name     string
	Category string
	Level    int64
	Position int64
}

func (q *Queries) UpdateSkill(ctx context.Context, arg UpdateSkillParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateSkill,
		arg.Name, arg.Category, arg.Level, arg.Position, time.Now(), arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteSkill = `
DELETE FROM skills WHERE id = ?
`

func (q *Queries) DeleteSkill(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteSkill, id)
	return err
}
