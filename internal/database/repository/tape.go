package repository

import (
	"context"
	"database/sql"
	"slices"
	"time"

	"github.com/jask/widgetdeck/internal/calc"
)

// TapeEntry is one stored calculation.
type TapeEntry struct {
	ID         int64
	Expression string
	Result     string
	Failed     bool
	CreatedAt  time.Time
}

// Line renders the entry as "7 + 8 = 15".
func (e TapeEntry) Line() string {
	return e.Expression + " = " + e.Result
}

// TapeRepo handles the calculator tape.
type TapeRepo struct {
	db *sql.DB
}

func NewTapeRepo(db *sql.DB) *TapeRepo { return &TapeRepo{db: db} }

// Append stores a completed calculation.
func (r *TapeRepo) Append(ctx context.Context, c calc.Calculation, precision int, at time.Time) (TapeEntry, error) {
	e := TapeEntry{
		Expression: c.Expression(precision),
		Result:     c.Display,
		Failed:     c.Failed,
		CreatedAt:  at.UTC(),
	}
	res, err := r.db.ExecContext(ctx, `
	INSERT INTO tape(expression, result, failed, created_at) VALUES (?, ?, ?, ?)`,
		e.Expression, e.Result, e.Failed, e.CreatedAt)
	if err != nil {
		return TapeEntry{}, err
	}
	e.ID, err = res.LastInsertId()
	return e, err
}

// Recent returns up to limit entries, oldest first.
func (r *TapeRepo) Recent(ctx context.Context, limit int) ([]TapeEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, expression, result, failed, created_at FROM tape
	ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TapeEntry
	for rows.Next() {
		var e TapeEntry
		if err := rows.Scan(&e.ID, &e.Expression, &e.Result, &e.Failed, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	slices.Reverse(out)
	return out, nil
}

func (r *TapeRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tape`)
	return err
}
