package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/widgetdeck/internal/database/repository"
	"github.com/jask/widgetdeck/internal/notes"
)

var notesSearch string

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List, export and import notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	RunE:  runNotesList,
}

var notesExportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write every note to a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesExport,
}

var notesImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Load notes from a TOML file, replacing notes with the same id",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesImport,
}

func init() {
	notesListCmd.Flags().StringVarP(&notesSearch, "search", "s", "", "Only notes whose title or content contains TERM")
	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesExportCmd)
	notesCmd.AddCommand(notesImportCmd)
}

func runNotesList(cmd *cobra.Command, args []string) error {
	db, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := repository.NewNoteRepo(db).List(cmd.Context())
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}
	book := notes.NewBook(list)
	matches := book.Filter(notesSearch)
	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		if s, ok := book.Suggest(notesSearch); ok {
			fmt.Fprintf(out, "no notes match %q, did you mean %q?\n", notesSearch, s)
		} else {
			fmt.Fprintln(out, "no notes")
		}
		return nil
	}
	for _, n := range matches {
		fmt.Fprintf(out, "%s  %s  %s\n", shortID(n.ID), n.CreatedAt.Local().Format("2006-01-02 15:04"), n.Title)
	}
	return nil
}

func runNotesExport(cmd *cobra.Command, args []string) error {
	db, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := repository.NewNoteRepo(db).List(cmd.Context())
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}
	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := notes.Export(f, list); err != nil {
		f.Close()
		return fmt.Errorf("export notes: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}
	logger.Info("notes exported", zap.String("file", args[0]), zap.Int("count", len(list)))
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d notes to %s\n", len(list), args[0])
	return nil
}

func runNotesImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open import: %w", err)
	}
	defer f.Close()
	list, err := notes.Import(f)
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}

	db, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()
	repo := repository.NewNoteRepo(db)
	for _, n := range list {
		if err := repo.Upsert(cmd.Context(), n); err != nil {
			return fmt.Errorf("save note %s: %w", n.ID, err)
		}
	}
	logger.Info("notes imported", zap.String("file", args[0]), zap.Int("count", len(list)))
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d notes\n", len(list))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
