package store

import (
	"context"
	"database/sql"
	"time"
)

const listTreks = `
SELECT id, name, slug, region, altitude_m, trekked_on, body, position, created_at, updated_at
FROM treks ORDER BY position, id DESC
`

func (q *Queries) ListTreks(ctx context.Context) ([]Trek, error) {
	rows, err := q.db.QueryContext(ctx, listTreks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Trek
	for rows.Next() {
		var t Trek
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Region, &t.AltitudeM, &t.TrekkedOn,
			&t.Body, &t.Position, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const getTrek = `
SELECT id, name, slug, region, altitude_m, trekked_on, body, position, created_at, updated_at
FROM treks WHERE id = ?
`

func (q *Queries) GetTrek(ctx context.Context, id int64) (Trek, error) {
	row := q.db.QueryRowContext(ctx, getTrek, id)
	var t Trek
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.Region, &t.AltitudeM, &t.TrekkedOn,
		&t.Body, &t.Position, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

const createTrek = `
INSERT INTO treks (name, slug, region, altitude_m, trekked_on, body, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, name, slug, region, altitude_m, trekked_on, body, position, created_at, updated_at
`

type CreateTrekParams struct {
	Name      string
	Slug      string
	Region    string
	AltitudeM int64
	TrekkedOn string
	Body      string
	Position  int64
}

func (q *Queries) CreateTrek(ctx context.Context, arg CreateTrekParams) (Trek, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, createTrek,
		arg.Name, arg.Slug, arg.Region, arg.AltitudeM, arg.TrekkedOn, arg.Body, arg.Position, now, now)
	var t Trek
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.Region, &t.AltitudeM, &t.TrekkedOn,
		&t.Body, &t.Position, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

const updateTrek = `
UPDATE treks
SET name = ?, slug = ?, region = ?, altitude_m = ?, trekked_on = ?, body = ?, position = ?, updated_at = ?
WHERE id = ?
`

type UpdateTrekParams struct {
	ID        int64
	Name      string
	Slug      string
	Region    string
	AltitudeM int64
	TrekkedOn string
	Body      string
	Position  int64
}

func (q *Queries) UpdateTrek(ctx context.Context, arg UpdateTrekParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateTrek,
		arg.Name, arg.Slug, arg.Region, arg.AltitudeM, arg.TrekkedOn, arg.Body, arg.Position, time.Now(), arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteTrek = `
DELETE FROM treks WHERE id = ?
`

func (q *Queries) DeleteTrek(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteTrek, id)
	return err
}

const listTrekPhotos = `
SELECT id, trek_id, file_path, thumb_path, caption, taken_at, width, height, position, created_at
FROM trek_photos WHERE trek_id = ? ORDER BY position, id
`

func (q *Queries) ListTrekPhotos(ctx context.Context, trekID int64) ([]TrekPhoto, error) {
	rows, err := q.db.QueryContext(ctx, listTrekPhotos, trekID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TrekPhoto
	for rows.Next() {
		var p TrekPhoto
		if err := rows.Scan(&p.ID, &p.TrekID, &p.FilePath, &p.ThumbPath, &p.Caption,
			&p.TakenAt, &p.Width, &p.Height, &p.Position, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const getTrekPhoto = `
SELECT id, trek_id, file_path, thumb_path, caption, taken_at, width, height, position, created_at
FROM trek_photos WHERE id = ?
`

func (q *Queries) GetTrekPhoto(ctx context.Context, id int64) (TrekPhoto, error) {
	row := q.db.QueryRowContext(ctx, getTrekPhoto, id)
	var p TrekPhoto
	err := row.Scan(&p.ID, &p.TrekID, &p.FilePath, &p.ThumbPath, &p.Caption,
		&p.TakenAt, &p.Width, &p.Height, &p.Position, &p.CreatedAt)
	return p, err
}

const createTrekPhoto = `
INSERT INTO trek_photos (trek_id, file_path, thumb_path, caption, taken_at, width, height, position, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, trek_id, file_path, thumb_path, caption, taken_at, width, height, position, created_at
`

type CreateTrekPhotoParams struct {
	TrekID    int64
	FilePath  string
	ThumbPath string
	Caption   string
	TakenAt   sql.NullTime
	Width     int64
	Height    int64
	Position  int64
}

func (q *Queries) CreateTrekPhoto(ctx context.Context, arg CreateTrekPhotoParams) (TrekPhoto, error) {
	row := q.db.QueryRowContext(ctx, createTrekPhoto,
		arg.TrekID, arg.FilePath, arg.ThumbPath, arg.Caption, arg.TakenAt,
		arg.Width, arg.Height, arg.Position, time.Now())
	var p TrekPhoto
	err := row.Scan(&p.ID, &p.TrekID, &p.FilePath, &p.ThumbPath, &p.Caption,
		&p.TakenAt, &p.Width, &p.Height, &p.Position, &p.CreatedAt)
	return p, err
}

const deleteTrekPhoto = `
DELETE FROM trek_photos WHERE id = ?
`

func (q *Queries) DeleteTrekPhoto(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteTrekPhoto, id)
	return err
}
