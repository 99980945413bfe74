package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/widgetdeck/internal/config"
	"github.com/jask/widgetdeck/internal/database"
	"github.com/jask/widgetdeck/internal/database/repository"
	"github.com/jask/widgetdeck/internal/logging"
	"github.com/jask/widgetdeck/internal/tui"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd launches the widget deck
var rootCmd = &cobra.Command{
	Use:   "widgetdeck",
	Short: "A terminal deck of small widgets",
	Long: `widgetdeck is a tabbed terminal dashboard: calculator, counter, notes,
kanban board, calendar, clock and image gallery, all stored in one SQLite file.

Run without arguments to open the interactive deck.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("config loaded", zap.String("path", config.Path()), zap.String("db", cfg.Database.Path))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Args: cobra.NoArgs,
	RunE: runDeck,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default: $WIDGETDECK_CONFIG or ~/.config/widgetdeck/config.toml)")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(tapeCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB migrates, opens and seeds the configured database.
func openDB(ctx context.Context) (*sql.DB, error) {
	db, err := database.Setup(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.Database.Path, err)
	}
	return db, nil
}

func runDeck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	repos := tui.Repos{
		Notes:  repository.NewNoteRepo(db),
		Events: repository.NewEventRepo(db),
		Tasks:  repository.NewTaskRepo(db),
		Tape:   repository.NewTapeRepo(db),
		State:  repository.NewStateRepo(db),
	}
	logger.Info("starting deck", zap.String("start_tab", cfg.UI.StartTab))
	p := tea.NewProgram(tui.New(ctx, cfg, repos, tui.WithLogger(logger)), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run deck: %w", err)
	}
	return nil
}
