package database

import (
	"context"
	"database/sql"

	"github.com/jask/widgetdeck/internal/board"
	"github.com/jask/widgetdeck/internal/database/repository"
)

const stateBoardSeeded = "board.seeded"

// SeedDefaults fills the board with sample tasks on first run.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	state := repository.NewStateRepo(db)
	seeded, err := state.GetBool(ctx, stateBoardSeeded, false)
	if err != nil || seeded {
		return err
	}
	tasks := repository.NewTaskRepo(db)
	n, err := tasks.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		positions := map[board.ColumnID]int{}
		for _, t := range board.Samples(Now()) {
			if err := tasks.Upsert(ctx, t, positions[t.Column]); err != nil {
				return err
			}
			positions[t.Column]++
		}
	}
	return state.SetBool(ctx, stateBoardSeeded, true)
}
