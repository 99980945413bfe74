package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/widgetdeck/internal/calc"
	"github.com/jask/widgetdeck/internal/database/repository"
)

const calcDisplayWidth = 24

func (a *App) updateCalc(msg tea.KeyMsg) tea.Cmd {
	k, ok := calc.ParseKey(msg.String())
	if !ok {
		return nil
	}
	c, done := a.calc.Press(k)
	a.log.Debug("calc key", zap.String("key", msg.String()), zap.String("display", a.calc.Display()))
	if !done {
		return nil
	}
	return a.recordCalculation(c)
}

// recordCalculation appends c to the on-screen tape and persists it.
func (a *App) recordCalculation(c calc.Calculation) tea.Cmd {
	now := a.now()
	precision := a.calc.Precision()
	a.tape = append(a.tape, repository.TapeEntry{
		Expression: c.Expression(precision),
		Result:     c.Display,
		Failed:     c.Failed,
		CreatedAt:  now,
	})
	if n := a.cfg.Calculator.TapeSize; n > 0 && len(a.tape) > n {
		a.tape = a.tape[len(a.tape)-n:]
	}
	if a.repos.Tape == nil {
		return nil
	}
	return a.persist("save tape", func(ctx context.Context) error {
		_, err := a.repos.Tape.Append(ctx, c, precision, now)
		return err
	})
}

// mergeTape puts stored entries in front of the ones recorded on screen
// before the load finished, dropping any that were already saved, and keeps
// the last size entries.
func mergeTape(stored, recorded []repository.TapeEntry, size int) []repository.TapeEntry {
	out := make([]repository.TapeEntry, 0, len(stored)+len(recorded))
	out = append(out, stored...)
	for _, e := range recorded {
		if e.ID == 0 && slices.ContainsFunc(stored, func(s repository.TapeEntry) bool {
			return s.Expression == e.Expression && s.Result == e.Result && s.CreatedAt.Equal(e.CreatedAt)
		}) {
			continue
		}
		out = append(out, e)
	}
	if size > 0 && len(out) > size {
		out = out[len(out)-size:]
	}
	return out
}

func (a *App) viewCalc() string {
	snap := a.calc.Snapshot()

	pending := " "
	if snap.Operator != calc.OpNone {
		pending = lipgloss.NewStyle().Foreground(operatorColor).Render(snap.Operator.Symbol())
	}
	display := displayStyle.Width(calcDisplayWidth).Render(truncate(snap.Display, calcDisplayWidth-2))
	if snap.State == calc.StateError {
		display = displayStyle.Foreground(colorError).Width(calcDisplayWidth).Render(snap.Display)
	}

	var lines []string
	lines = append(lines, pending+" "+display, "")
	if snap.HasAccumulator {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("acc  %s", calc.FormatResult(snap.Accumulator, a.calc.Precision()))))
	} else {
		lines = append(lines, dimStyle.Render("acc  —"))
	}
	lines = append(lines, dimStyle.Render("state "+snap.State.String()))
	pad := renderSection("Calculator", strings.Join(lines, "\n"), calcDisplayWidth+8, true)

	tape := renderSection("Tape", a.renderTape(), 32, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, pad, " ", tape)
}

func (a *App) renderTape() string {
	if len(a.tape) == 0 {
		return dimStyle.Render("(empty)")
	}
	lines := make([]string, 0, len(a.tape))
	for _, e := range a.tape {
		line := e.Expression + " = "
		if e.Failed {
			line += errorStyle.Render(e.Result)
		} else {
			line += okStyle.Render(e.Result)
		}
		lines = append(lines, truncate(line, 28))
	}
	return strings.Join(lines, "\n")
}
