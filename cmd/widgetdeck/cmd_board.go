package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/widgetdeck/internal/board"
	"github.com/jask/widgetdeck/internal/calendar"
	"github.com/jask/widgetdeck/internal/database/repository"
)

var eventsDate string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the kanban columns",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List calendar events",
	Args:  cobra.NoArgs,
	RunE:  runEvents,
}

func init() {
	eventsCmd.Flags().StringVarP(&eventsDate, "date", "d", "", "Only events on YYYY-MM-DD")
}

func runBoard(cmd *cobra.Command, args []string) error {
	db, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	tasks, err := repository.NewTaskRepo(db).List(cmd.Context())
	if err != nil {
		return fmt.Errorf("load board: %w", err)
	}
	b := board.New(tasks)
	out := cmd.OutOrStdout()
	for i, id := range board.Columns {
		if i > 0 {
			fmt.Fprintln(out)
		}
		col := b.Column(id)
		fmt.Fprintf(out, "%s (%d)\n", id.Title(), len(col))
		for _, t := range col {
			fmt.Fprintf(out, "  [%-6s] %s\n", t.Priority, t.Title)
		}
	}
	return nil
}

func runEvents(cmd *cobra.Command, args []string) error {
	if eventsDate != "" {
		if _, err := calendar.ParseDate(eventsDate, time.Local); err != nil {
			return calendar.ErrInvalidDate
		}
	}
	db, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repository.NewEventRepo(db)
	var events []calendar.Event
	if eventsDate != "" {
		events, err = repo.ByDate(cmd.Context(), eventsDate)
	} else {
		events, err = repo.List(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(events) == 0 {
		fmt.Fprintln(out, "no events")
		return nil
	}
	for _, e := range events {
		line := e.Date + "  " + e.Title
		if e.Description != "" {
			line += " (" + e.Description + ")"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
