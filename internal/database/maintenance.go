package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Tables lists the widget data tables in delete order.
var Tables = []string{"notes", "events", "board_tasks", "tape", "widget_state"}

// Reset wipes all widget data. It keeps the schema intact so the app can
// continue running; the next Setup seeds the sample board again.
func Reset(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("reset: db not configured")
	}
	if err := WithTx(db, func(tx *sql.Tx) error {
		for _, t := range Tables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		// keep tape ids starting from 1
		if _, err := tx.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = 'tape'"); err != nil {
			return fmt.Errorf("reset tape sequence: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = db.ExecContext(ctx, "VACUUM")
	return nil
}
