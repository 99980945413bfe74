package repository

import (
	"context"
	"database/sql"

	"github.com/jask/widgetdeck/internal/board"
)

// TaskRepo handles board tasks. Position orders tasks within a column.
type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Upsert(ctx context.Context, t board.Task, position int) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO board_tasks(id, column_id, position, title, description, priority, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		column_id=excluded.column_id,
		position=excluded.position,
		title=excluded.title,
		description=excluded.description,
		priority=excluded.priority;
	`, t.ID, string(t.Column), position, t.Title, t.Description, string(t.Priority), t.CreatedAt.UTC())
	return err
}

// Move appends a task to the end of column and closes the gap it leaves in
// its source column. Moving a task onto its own column changes nothing.
func (r *TaskRepo) Move(ctx context.Context, id string, column board.ColumnID) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		var source string
		err := tx.QueryRowContext(ctx, `SELECT column_id FROM board_tasks WHERE id = ?`, id).Scan(&source)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		if source == string(column) {
			return nil
		}
		if _, err := tx.ExecContext(ctx, `
		UPDATE board_tasks SET column_id = ?,
			position = (SELECT COALESCE(MAX(position), -1) + 1 FROM board_tasks WHERE column_id = ?)
		WHERE id = ?`, string(column), string(column), id); err != nil {
			return err
		}
		return renumber(ctx, tx, source)
	})
}

// Delete removes a task and closes the gap in its column.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		var column string
		err := tx.QueryRowContext(ctx, `SELECT column_id FROM board_tasks WHERE id = ?`, id).Scan(&column)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM board_tasks WHERE id = ?`, id); err != nil {
			return err
		}
		return renumber(ctx, tx, column)
	})
}

// renumber rewrites a column's positions as 0..n-1, keeping their order.
func renumber(ctx context.Context, tx *sql.Tx, column string) error {
	rows, err := tx.QueryContext(ctx, `SELECT id FROM board_tasks WHERE column_id = ? ORDER BY position, rowid`, column)
	if err != nil {
		return err
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, `UPDATE board_tasks SET position = ? WHERE id = ?`, i, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *TaskRepo) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *TaskRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM board_tasks`).Scan(&n)
	return n, err
}

// List returns tasks in column display order, then by position.
func (r *TaskRepo) List(ctx context.Context) ([]board.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, column_id, title, description, priority, created_at FROM board_tasks
	ORDER BY CASE column_id WHEN 'todo' THEN 0 WHEN 'in-progress' THEN 1 ELSE 2 END, position, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []board.Task
	for rows.Next() {
		var t board.Task
		var column, priority string
		if err := rows.Scan(&t.ID, &column, &t.Title, &t.Description, &priority, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Column = board.ColumnID(column)
		t.Priority = board.ParsePriority(priority)
		out = append(out, t)
	}
	return out, rows.Err()
}
