package repository

import (
	"context"
	"database/sql"

	"github.com/jask/widgetdeck/internal/notes"
)

// NoteRepo handles notes.
type NoteRepo struct {
	db *sql.DB
}

func NewNoteRepo(db *sql.DB) *NoteRepo { return &NoteRepo{db: db} }

func (r *NoteRepo) Upsert(ctx context.Context, n notes.Note) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO notes(id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET title=excluded.title, content=excluded.content, updated_at=excluded.updated_at;
	`, n.ID, n.Title, n.Content, n.CreatedAt.UTC(), n.UpdatedAt.UTC())
	return err
}

func (r *NoteRepo) Get(ctx context.Context, id string) (*notes.Note, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?`, id)
	var n notes.Note
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// List returns every note, newest first.
func (r *NoteRepo) List(ctx context.Context) ([]notes.Note, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, content, created_at, updated_at FROM notes
	ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []notes.Note
	for rows.Next() {
		var n notes.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	return err
}
