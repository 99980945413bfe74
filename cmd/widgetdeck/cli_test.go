package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupCLI points config, database and logging at a temp dir and clears the
// flag globals left over from earlier runs.
func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("WIDGETDECK_CONFIG", filepath.Join(dir, "config.toml"))
	t.Setenv("WIDGETDECK_DATABASE_PATH", filepath.Join(dir, "deck.db"))
	t.Setenv("WIDGETDECK_LOG_ENABLED", "false")

	verbose = false
	cfgPath = ""
	calcTrace = false
	calcSave = false
	tapeLimit = 0
	notesSearch = ""
	eventsDate = ""
	configForce = false
	resetYes = false
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCalcPrintsDisplay(t *testing.T) {
	setupCLI(t)
	out, err := execute(t, "calc", "12+30=")
	require.NoError(t, err)
	require.Equal(t, "42\n", out)
}

func TestCalcDivideByZero(t *testing.T) {
	setupCLI(t)
	out, err := execute(t, "calc", "5/0=")
	require.NoError(t, err)
	require.Equal(t, "Error\n", out)
}

func TestCalcHelpExampleSubtracts(t *testing.T) {
	setupCLI(t)
	require.Contains(t, calcCmd.Long, "calc --save 5-8=")
	out, err := execute(t, "calc", "5-8=")
	require.NoError(t, err)
	require.Equal(t, "-3\n", out)
}

func TestCalcTrace(t *testing.T) {
	setupCLI(t)
	out, err := execute(t, "calc", "--trace", "1+2=")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasSuffix(lines[3], " 3"), "last line %q", lines[3])
}

func TestCalcSaveAndTape(t *testing.T) {
	setupCLI(t)
	_, err := execute(t, "calc", "--save", "7+8=")
	require.NoError(t, err)

	calcSave = false
	out, err := execute(t, "tape")
	require.NoError(t, err)
	require.Contains(t, out, "7 + 8 = 15")

	out, err = execute(t, "tape", "clear")
	require.NoError(t, err)
	require.Equal(t, "tape cleared\n", out)

	out, err = execute(t, "tape")
	require.NoError(t, err)
	require.Equal(t, "tape is empty\n", out)
}

func TestBoardShowsSeededColumns(t *testing.T) {
	setupCLI(t)
	out, err := execute(t, "board")
	require.NoError(t, err)
	require.Contains(t, out, "To Do (2)")
	require.Contains(t, out, "In Progress (1)")
	require.Contains(t, out, "Done (1)")
	require.Contains(t, out, "API integration")
}

func TestNotesImportListExport(t *testing.T) {
	dir := setupCLI(t)
	src := filepath.Join(dir, "in.toml")
	require.NoError(t, os.WriteFile(src, []byte(`
[[note]]
id = "n-1"
title = "Groceries"
content = "milk, eggs"
created_at = 2026-10-01T08:00:00Z

[[note]]
id = "n-2"
title = "Ideas"
content = "terminal widgets"
created_at = 2026-10-02T08:00:00Z
`), 0o644))

	out, err := execute(t, "notes", "import", src)
	require.NoError(t, err)
	require.Equal(t, "imported 2 notes\n", out)

	out, err = execute(t, "notes", "list")
	require.NoError(t, err)
	require.Less(t, strings.Index(out, "Ideas"), strings.Index(out, "Groceries"))

	out, err = execute(t, "notes", "list", "--search", "groceris")
	require.NoError(t, err)
	require.Contains(t, out, `did you mean "Groceries"?`)

	notesSearch = ""
	dst := filepath.Join(dir, "out.toml")
	out, err = execute(t, "notes", "export", dst)
	require.NoError(t, err)
	require.Contains(t, out, "exported 2 notes")
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Contains(t, string(data), "Groceries")
}

func TestEventsRejectsBadDate(t *testing.T) {
	setupCLI(t)
	_, err := execute(t, "events", "--date", "17/10/2026")
	require.Error(t, err)

	eventsDate = ""
	out, err := execute(t, "events")
	require.NoError(t, err)
	require.Equal(t, "no events\n", out)
}

func TestConfigInitAndShow(t *testing.T) {
	dir := setupCLI(t)
	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, filepath.Join(dir, "config.toml"))

	_, err = execute(t, "config", "init")
	require.Error(t, err)

	out, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
	require.Contains(t, out, "wrote")

	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "precision = 8")
	require.Contains(t, out, filepath.Join(dir, "deck.db"))
}

func TestResetRequiresYes(t *testing.T) {
	setupCLI(t)
	_, err := execute(t, "reset")
	require.Error(t, err)

	out, err := execute(t, "reset", "--yes")
	require.NoError(t, err)
	require.Equal(t, "all widget data deleted\n", out)
}
