package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

// Keys for small widget preferences.
const (
	StateCounter      = "counter"
	StateClockHour12  = "clock.hour12"
	StateGalleryIndex = "gallery.index"
)

// StateRepo is a key/value store for widget state.
type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo { return &StateRepo{db: db} }

// Get returns the value for key and whether it was set.
func (r *StateRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM widget_state WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *StateRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO widget_state(key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at;
	`, key, value)
	return err
}

// GetInt returns the stored integer for key, or def when unset.
func (r *StateRepo) GetInt(ctx context.Context, key string, def int) (int, error) {
	v, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("state %s: %w", key, err)
	}
	return n, nil
}

func (r *StateRepo) SetInt(ctx context.Context, key string, n int) error {
	return r.Set(ctx, key, strconv.Itoa(n))
}

// GetBool returns the stored flag for key, or def when unset.
func (r *StateRepo) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	v, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("state %s: %w", key, err)
	}
	return b, nil
}

func (r *StateRepo) SetBool(ctx context.Context, key string, b bool) error {
	return r.Set(ctx, key, strconv.FormatBool(b))
}
