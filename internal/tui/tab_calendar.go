package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/widgetdeck/internal/calendar"
)

type calendarView struct {
	cursor calendar.Cursor
	agenda *calendar.Agenda
	event  int
	adding bool
	input  textinput.Model
}

func newCalendarView(now time.Time) calendarView {
	in := textinput.New()
	in.Prompt = "Event: "
	in.Placeholder = "title"
	in.CharLimit = 80
	return calendarView{cursor: calendar.NewCursor(now), agenda: calendar.NewAgenda(nil), input: in}
}

func (v *calendarView) load(events []calendar.Event) {
	v.agenda = calendar.NewAgenda(events)
	v.event = 0
}

func (v *calendarView) dayEvents() []calendar.Event {
	return v.agenda.ForDate(v.cursor.Selected)
}

func (a *App) updateCalendar(msg tea.KeyMsg) tea.Cmd {
	v := &a.cal
	k := a.keys.calendar

	if v.adding {
		switch {
		case key.Matches(msg, k.Cancel):
			v.adding = false
			v.input.Blur()
			v.input.Reset()
			return nil
		case key.Matches(msg, k.Submit):
			return a.addEvent()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return cmd
	}

	before := v.cursor.Selected
	switch {
	case key.Matches(msg, k.Left):
		v.cursor.MoveSelection(-1)
	case key.Matches(msg, k.Right):
		v.cursor.MoveSelection(1)
	case key.Matches(msg, k.Up):
		v.cursor.MoveSelection(-7)
	case key.Matches(msg, k.Down):
		v.cursor.MoveSelection(7)
	case key.Matches(msg, k.PrevMonth):
		v.cursor.PrevMonth()
		v.cursor.Select(min(v.cursor.Selected.Day(), calendar.DaysInMonth(v.cursor.Month)))
	case key.Matches(msg, k.NextMonth):
		v.cursor.NextMonth()
		v.cursor.Select(min(v.cursor.Selected.Day(), calendar.DaysInMonth(v.cursor.Month)))
	case key.Matches(msg, k.Today):
		v.cursor.Today(a.now())
	case key.Matches(msg, k.NextEvent):
		if n := len(v.dayEvents()); n > 0 {
			v.event = (v.event + 1) % n
		}
	case key.Matches(msg, k.Add):
		v.adding = true
		return v.input.Focus()
	case key.Matches(msg, k.Delete):
		return a.deleteEvent()
	}
	if !calendar.SameDay(before, v.cursor.Selected) {
		v.event = 0
	}
	return nil
}

func (a *App) addEvent() tea.Cmd {
	v := &a.cal
	e, err := v.agenda.Add(calendar.FormatDate(v.cursor.Selected), v.input.Value(), "")
	if err != nil {
		a.setError(err)
		return nil
	}
	v.adding = false
	v.input.Blur()
	v.input.Reset()
	v.event = len(v.dayEvents()) - 1
	a.setStatus("added %q on %s", e.Title, e.Date)
	if a.repos.Events == nil {
		return nil
	}
	return a.persist("save event", func(ctx context.Context) error {
		return a.repos.Events.Insert(ctx, e)
	})
}

func (a *App) deleteEvent() tea.Cmd {
	v := &a.cal
	events := v.dayEvents()
	if v.event < 0 || v.event >= len(events) {
		return nil
	}
	e := events[v.event]
	if err := v.agenda.Delete(e.ID); err != nil {
		a.setError(err)
		return nil
	}
	v.event = max(0, min(v.event, len(events)-2))
	a.setStatus("deleted %q", e.Title)
	if a.repos.Events == nil {
		return nil
	}
	return a.persist("delete event", func(ctx context.Context) error {
		return a.repos.Events.Delete(ctx, e.ID)
	})
}

func (a *App) calendarHelp() []key.Binding {
	k := a.keys.calendar
	if a.cal.adding {
		return []key.Binding{k.Submit, k.Cancel}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("←→↑↓", "day")),
		key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[ ]", "month")),
		k.Today, k.Add, k.NextEvent, k.Delete,
	}
}

func (a *App) viewCalendar() string {
	v := &a.cal
	locale := a.cfg.Clock.Locale
	today := a.now()

	cell := lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	var rows []string
	var header []string
	for _, w := range calendar.Weekdays(locale) {
		header = append(header, cell.Foreground(colorSubtext0).Render(w))
	}
	rows = append(rows, strings.Join(header, ""))

	month := v.cursor.Month
	for _, week := range calendar.Grid(month) {
		var cells []string
		for _, d := range week {
			if d == 0 {
				cells = append(cells, cell.Render(""))
				continue
			}
			day := time.Date(month.Year(), month.Month(), d, 0, 0, 0, 0, month.Location())
			style := cell.Foreground(colorText)
			if v.agenda.HasEvents(day) {
				style = style.Foreground(eventDayColor).Underline(true)
			}
			if calendar.SameDay(day, today) {
				style = style.Bold(true).Foreground(colorAccent)
			}
			if calendar.SameDay(day, v.cursor.Selected) {
				style = style.Reverse(true)
			}
			cells = append(cells, style.Render(fmt.Sprintf("%d", d)))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	grid := renderSection(v.cursor.Title(locale), strings.Join(rows, "\n"), 34, true)

	var lines []string
	events := v.dayEvents()
	for i, e := range events {
		line := cursorMarker(i == v.event) + " " + e.Title
		if e.Description != "" {
			line += dimStyle.Render(" · " + e.Description)
		}
		lines = append(lines, truncate(line, 36))
	}
	if len(events) == 0 {
		lines = append(lines, dimStyle.Render("no events"))
	}
	if v.adding {
		lines = append(lines, "", v.input.View())
	}
	agenda := renderSection(calendar.FormatDate(v.cursor.Selected), strings.Join(lines, "\n"), 40, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, grid, " ", agenda)
}
