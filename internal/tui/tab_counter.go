package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/widgetdeck/internal/database/repository"
)

func (a *App) updateCounter(msg tea.KeyMsg) tea.Cmd {
	k := a.keys.counter
	switch {
	case key.Matches(msg, k.Increment):
		a.counter.Increment()
	case key.Matches(msg, k.Decrement):
		a.counter.Decrement()
	case key.Matches(msg, k.Reset):
		a.counter.Reset()
		a.setStatus("counter reset")
	default:
		return nil
	}
	return a.saveInt(repository.StateCounter, a.counter.Value())
}

func (a *App) viewCounter() string {
	value := bigTimeStyle.Render(fmt.Sprintf("%d", a.counter.Value()))
	return renderSection("Counter", value+"\n"+renderHelp(a.keys.counter.help()), 40, true)
}
