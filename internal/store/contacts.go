package store

import (
	"context"
	"database/sql"
	"time"
)

// Contact is one address-book entry.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Tag       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactRepo handles contacts.
type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

func (r *ContactRepo) Upsert(ctx context.Context, c Contact) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO contacts(id, name, email, tag, created_at, updated_at)
	VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 email=excluded.email,
	 tag=excluded.tag,
	 updated_at=CURRENT_TIMESTAMP;
	`, c.ID, c.Name, c.Email, c.Tag)
	return err
}

func (r *ContactRepo) List(ctx context.Context) ([]Contact, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, tag, created_at, updated_at FROM contacts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Tag, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ContactRepo) Get(ctx context.Context, id string) (Contact, error) {
	var c Contact
	err := r.db.QueryRowContext(ctx, `SELECT id, name, email, tag, created_at, updated_at FROM contacts WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Tag, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *ContactRepo) SetTag(ctx context.Context, id, tag string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE contacts SET tag = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, tag, id)
	return err
}

func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	return err
}

// Tags returns the distinct tags in use, skipping the empty tag.
func (r *ContactRepo) Tags(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT tag FROM contacts WHERE tag != '' ORDER BY tag`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		out = append(out, tag)
	}
	return out, rows.Err()
}
