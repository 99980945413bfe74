package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/widgetdeck/internal/database/repository"
)

func (a *App) updateClock(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, a.keys.clock.Toggle) {
		return nil
	}
	label := a.clock.ToggleLabel()
	a.clock.Toggle()
	a.setStatus("clock: %s", label)
	return a.saveBool(repository.StateClockHour12, a.clock.Hour12)
}

func (a *App) viewClock() string {
	t := a.clockNow
	body := bigTimeStyle.Render(a.clock.FormatTime(t)) + "\n" +
		infoStyle.Render(a.clock.FormatDate(t)) + "\n\n" +
		dimStyle.Render("f: switch to "+a.clock.ToggleLabel())
	return renderSection("Clock", body, 40, true)
}
