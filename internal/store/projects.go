package store

import (
	"context"
	"time"
)

const listProjects = `
SELECT id, title, slug, summary, body, tech, repo_url, live_url, featured, position, created_at, updated_at
FROM projects ORDER BY position, id DESC
`

func (q *Queries) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx, listProjects)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Body, &p.Tech,
			&p.RepoURL, &p.LiveURL, &p.Featured, &p.Position, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const getProject = `
SELECT id, title, slug, summary, body, tech, repo_url, live_url, featured, position, created_at, updated_at
FROM projects WHERE id = ?
`

func (q *Queries) GetProject(ctx context.Context, id int64) (Project, error) {
	row := q.db.QueryRowContext(ctx, getProject, id)
	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Body, &p.Tech,
		&p.RepoURL, &p.LiveURL, &p.Featured, &p.Position, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const getProjectBySlug = `
SELECT id, title, slug, summary, body, tech, repo_url, live_url, featured, position, created_at, updated_at
FROM projects WHERE slug = ?
`

func (q *Queries) GetProjectBySlug(ctx context.Context, slug string) (Project, error) {
	row := q.db.QueryRowContext(ctx, getProjectBySlug, slug)
	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Body, &p.Tech,
		&p.RepoURL, &p.LiveURL, &p.Featured, &p.Position, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const createProject = `
INSERT INTO projects (title, slug, summary, body, tech, repo_url, live_url, featured, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, title, slug, summary, body, tech, repo_url, live_url, featured, position, created_at, updated_at
`

type CreateProjectParams struct {
	Title    string
	Slug     string
	Summary  string
	Body     string
	Tech     string
	RepoURL  string
	LiveURL  string
	Featured bool
	Position int64
}

func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (Project, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, createProject,
		arg.Title, arg.Slug, arg.Summary, arg.Body, arg.Tech,
		arg.RepoURL, arg.LiveURL, arg.Featured, arg.Position, now, now)
	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Body, &p.Tech,
		&p.RepoURL, &p.LiveURL, &p.Featured, &p.Position, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const updateProject = `
UPDATE projects
SET title = ?, slug = ?, summary = ?, body = ?, tech = ?, repo_url = ?, live_url = ?, featured = ?, position = ?, updated_at = ?
WHERE id = ?
`

type UpdateProjectParams struct {
	ID       int64
	Title    string
	Slug     string
	Summary  string
	Body     string
	Tech     string
	RepoURL  string
	LiveURL  string
	Featured bool
	Position int64
}

func (q *Queries) UpdateProject(ctx context.Context, arg UpdateProjectParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateProject,
		arg.Title, arg.Slug, arg.Summary, arg.Body, arg.Tech,
		arg.RepoURL, arg.LiveURL, arg.Featured, arg.Position, time.Now(), arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteProject = `
DELETE FROM projects WHERE id = ?
`

func (q *Queries) DeleteProject(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteProject, id)
	return err
}
