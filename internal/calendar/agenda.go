package calendar

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired = errors.New("calendar: title is required")
	ErrInvalidDate   = errors.New("calendar: date must be YYYY-MM-DD")
	ErrNotFound      = errors.New("calendar: event not found")
)

type Event struct {
	ID          string
	Date        string
	Title       string
	Description string
}

// Agenda holds events in the order they were added.
type Agenda struct {
	events []Event
}

func NewAgenda(stored []Event) *Agenda {
	a := &Agenda{events: make([]Event, len(stored))}
	copy(a.events, stored)
	return a
}

func (a *Agenda) All() []Event {
	out := make([]Event, len(a.events))
	copy(out, a.events)
	return out
}

func (a *Agenda) Add(date, title, description string) (Event, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Event{}, ErrInvalidDate
	}
	if strings.TrimSpace(title) == "" {
		return Event{}, ErrTitleRequired
	}
	e := Event{ID: uuid.NewString(), Date: date, Title: strings.TrimSpace(title), Description: description}
	a.events = append(a.events, e)
	return e, nil
}

func (a *Agenda) Delete(id string) error {
	for i, e := range a.events {
		if e.ID == id {
			a.events = append(a.events[:i], a.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ForDate returns the events on day, in the order they were added.
func (a *Agenda) ForDate(day time.Time) []Event {
	key := FormatDate(day)
	var out []Event
	for _, e := range a.events {
		if e.Date == key {
			out = append(out, e)
		}
	}
	return out
}

func (a *Agenda) HasEvents(day time.Time) bool {
	key := FormatDate(day)
	for _, e := range a.events {
		if e.Date == key {
			return true
		}
	}
	return false
}
