package repository

import (
	"context"
	"database/sql"

	"github.com/jask/widgetdeck/internal/calendar"
)

// EventRepo handles calendar events.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Insert(ctx context.Context, e calendar.Event) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO events(id, event_date, title, description) VALUES (?, ?, ?, ?)`,
		e.ID, e.Date, e.Title, e.Description)
	return err
}

// List returns all events by date, then insertion order.
func (r *EventRepo) List(ctx context.Context) ([]calendar.Event, error) {
	return r.query(ctx, `SELECT id, event_date, title, description FROM events ORDER BY event_date, rowid`)
}

// ByDate returns the events on a YYYY-MM-DD date.
func (r *EventRepo) ByDate(ctx context.Context, date string) ([]calendar.Event, error) {
	return r.query(ctx, `SELECT id, event_date, title, description FROM events WHERE event_date = ? ORDER BY rowid`, date)
}

func (r *EventRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}

func (r *EventRepo) query(ctx context.Context, q string, args ...any) ([]calendar.Event, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []calendar.Event
	for rows.Next() {
		var e calendar.Event
		if err := rows.Scan(&e.ID, &e.Date, &e.Title, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
