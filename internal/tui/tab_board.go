package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/widgetdeck/internal/board"
)

type boardView struct {
	board    *board.Board
	col      int
	row      int
	moving   bool
	adding   bool
	input    textinput.Model
	priority board.Priority
}

func newBoardView() boardView {
	in := textinput.New()
	in.Prompt = "Task: "
	in.Placeholder = "title"
	in.CharLimit = 80
	return boardView{board: board.New(nil), input: in, priority: board.Medium}
}

func (v *boardView) load(tasks []board.Task) {
	v.board = board.New(tasks)
	v.clampRow()
}

func (v *boardView) column() board.ColumnID {
	return board.Columns[v.col]
}

func (v *boardView) clampRow() {
	n := len(v.board.Column(v.column()))
	v.row = max(0, min(v.row, n-1))
}

func (v *boardView) selected() (board.Task, bool) {
	tasks := v.board.Column(v.column())
	if v.row < 0 || v.row >= len(tasks) {
		return board.Task{}, false
	}
	return tasks[v.row], true
}

func (a *App) updateBoard(msg tea.KeyMsg) tea.Cmd {
	v := &a.board
	k := a.keys.board

	if v.adding {
		switch {
		case key.Matches(msg, k.Cancel):
			v.adding = false
			v.input.Blur()
			v.input.Reset()
			return nil
		case key.Matches(msg, k.Priority):
			v.priority = v.priority.Next()
			return nil
		case key.Matches(msg, k.Submit):
			return a.addTask()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return cmd
	}

	if v.moving {
		switch {
		case key.Matches(msg, k.Left):
			return a.moveTask(-1)
		case key.Matches(msg, k.Right):
			return a.moveTask(1)
		}
		v.moving = false
		a.setStatus("move cancelled")
		return nil
	}

	switch {
	case key.Matches(msg, k.Left):
		v.col = (v.col - 1 + len(board.Columns)) % len(board.Columns)
		v.clampRow()
	case key.Matches(msg, k.Right):
		v.col = (v.col + 1) % len(board.Columns)
		v.clampRow()
	case key.Matches(msg, k.Up):
		if v.row > 0 {
			v.row--
		}
	case key.Matches(msg, k.Down):
		if v.row < len(v.board.Column(v.column()))-1 {
			v.row++
		}
	case key.Matches(msg, k.Add):
		v.adding = true
		v.priority = board.Medium
		return v.input.Focus()
	case key.Matches(msg, k.Move):
		if t, ok := v.selected(); ok {
			v.moving = true
			a.setStatus("move %q: ← or →", t.Title)
		}
	case key.Matches(msg, k.Delete):
		return a.deleteTask()
	}
	return nil
}

func (a *App) addTask() tea.Cmd {
	v := &a.board
	t, err := v.board.Add(v.column(), v.input.Value(), "", v.priority, a.now())
	if err != nil {
		a.setError(err)
		return nil
	}
	v.adding = false
	v.input.Blur()
	v.input.Reset()
	pos := v.board.Position(t.ID)
	v.row = pos
	a.setStatus("added %q to %s", t.Title, t.Column.Title())
	if a.repos.Tasks == nil {
		return nil
	}
	return a.persist("save task", func(ctx context.Context) error {
		return a.repos.Tasks.Upsert(ctx, t, pos)
	})
}

// moveTask sends the selected task dir columns over. The selection follows it.
func (a *App) moveTask(dir int) tea.Cmd {
	v := &a.board
	v.moving = false
	t, ok := v.selected()
	if !ok {
		return nil
	}
	target := v.col + dir
	if target < 0 || target >= len(board.Columns) {
		a.setStatus("%q is already in %s", t.Title, t.Column.Title())
		return nil
	}
	moved, err := v.board.Move(t.ID, board.Columns[target])
	if err != nil {
		a.setError(err)
		return nil
	}
	v.col = target
	v.row = v.board.Position(moved.ID)
	a.setStatus("moved %q to %s", moved.Title, moved.Column.Title())
	if a.repos.Tasks == nil {
		return nil
	}
	return a.persist("move task", func(ctx context.Context) error {
		return a.repos.Tasks.Move(ctx, moved.ID, moved.Column)
	})
}

func (a *App) deleteTask() tea.Cmd {
	v := &a.board
	t, ok := v.selected()
	if !ok {
		return nil
	}
	if err := v.board.Remove(t.ID); err != nil {
		a.setError(err)
		return nil
	}
	v.clampRow()
	a.setStatus("deleted %q", t.Title)
	if a.repos.Tasks == nil {
		return nil
	}
	return a.persist("delete task", func(ctx context.Context) error {
		return a.repos.Tasks.Delete(ctx, t.ID)
	})
}

func (a *App) boardHelp() []key.Binding {
	k := a.keys.board
	switch {
	case a.board.adding:
		return []key.Binding{k.Priority, k.Submit, k.Cancel}
	case a.board.moving:
		return []key.Binding{k.Left, k.Right}
	}
	return []key.Binding{k.Left, k.Up, k.Down, k.Add, k.Move, k.Delete}
}

func (a *App) viewBoard() string {
	v := &a.board
	colWidth := 28
	if a.width > 0 {
		colWidth = max(20, min((a.width-4)/len(board.Columns), 40))
	}
	cols := make([]string, 0, len(board.Columns))
	for ci, id := range board.Columns {
		tasks := v.board.Column(id)
		var lines []string
		for ri, t := range tasks {
			focused := ci == v.col && ri == v.row
			pri := lipgloss.NewStyle().Foreground(priorityColor[string(t.Priority)]).Render("●")
			title := truncate(t.Title, colWidth-8)
			if focused && v.moving {
				title = warnStyle.Render(title)
			}
			lines = append(lines, fmt.Sprintf("%s %s %s", cursorMarker(focused), pri, title))
		}
		if len(tasks) == 0 {
			lines = append(lines, dimStyle.Render("(empty)"))
		}
		heading := fmt.Sprintf("%s (%d)", id.Title(), len(tasks))
		cols = append(cols, renderSection(heading, strings.Join(lines, "\n"), colWidth, ci == v.col))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if v.adding {
		pri := lipgloss.NewStyle().Foreground(priorityColor[string(v.priority)]).Render(string(v.priority))
		out += "\n" + v.input.View() + "  " + dimStyle.Render("priority ") + pri
	} else if t, ok := v.selected(); ok && t.Description != "" {
		out += "\n" + dimStyle.Render(truncate(t.Description, max(colWidth*3, 20)))
	}
	return out
}
