package tui

import (
	"time"

	"github.com/jask/widgetdeck/internal/board"
	"github.com/jask/widgetdeck/internal/calendar"
	"github.com/jask/widgetdeck/internal/database/repository"
	"github.com/jask/widgetdeck/internal/gallery"
	"github.com/jask/widgetdeck/internal/notes"
)

type errMsg struct{ error }

type statusMsg string

type tapeMsg []repository.TapeEntry

type notesMsg []notes.Note

type tasksMsg []board.Task

type eventsMsg []calendar.Event

// widgetStateMsg carries the small persisted preferences.
type widgetStateMsg struct {
	counter      int
	hour12       bool
	galleryIndex int
}

type galleryMsg struct {
	gallery *gallery.Gallery
	err     error
}

type tickMsg time.Time
