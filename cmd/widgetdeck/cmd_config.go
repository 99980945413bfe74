package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/widgetdeck/internal/config"
	"github.com/jask/widgetdeck/internal/database"
)

var (
	configForce bool
	resetYes    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// resetCmd wipes widget data but keeps the schema
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all notes, events, tasks, tape and widget state",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the reset")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func configFile() string {
	if cfgPath != "" {
		return cfgPath
	}
	return config.Path()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configFile()
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", configFile())
	return toml.NewEncoder(out).Encode(cfg)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes {
		return errors.New("reset deletes all widget data; pass --yes to confirm")
	}
	db, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()
	if err := database.Reset(cmd.Context(), db); err != nil {
		return err
	}
	logger.Warn("widget data reset", zap.String("db", cfg.Database.Path))
	fmt.Fprintln(cmd.OutOrStdout(), "all widget data deleted")
	return nil
}
