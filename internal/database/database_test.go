package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jask/widgetdeck/internal/board"
	"github.com/jask/widgetdeck/internal/database/repository"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"))
}

func setupTestDB(t *testing.T) (string, func()) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widgetdeck.db")
	db, err := Setup(context.Background(), path)
	require.NoError(t, err)
	return path, func() { require.NoError(t, db.Close()) }
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path, cleanup := setupTestDB(t)
	cleanup()
	require.NoError(t, RunMigrations(path))
	require.NoError(t, RunMigrations(path))
}

func TestSeedDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seed.db")
	db, err := Setup(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	tasks := repository.NewTaskRepo(db)
	list, err := tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(board.Samples(Now())))
	require.Equal(t, board.Todo, list[0].Column)
	require.Equal(t, board.Done, list[len(list)-1].Column)

	// Deleting every task must not bring the samples back.
	for _, task := range list {
		require.NoError(t, tasks.Delete(ctx, task.ID))
	}
	require.NoError(t, SeedDefaults(ctx, db))
	n, err := tasks.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestResetWipesData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reset.db")
	db, err := Setup(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	state := repository.NewStateRepo(db)
	require.NoError(t, state.SetInt(ctx, repository.StateCounter, 7))

	require.NoError(t, Reset(ctx, db))
	for _, table := range Tables {
		var n int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n))
		require.Zerof(t, n, "table %s", table)
	}

	require.NoError(t, SeedDefaults(ctx, db))
	n, err := repository.NewTaskRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, n)
}

func TestResetNilDB(t *testing.T) {
	require.Error(t, Reset(context.Background(), nil))
}
