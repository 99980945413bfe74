// Package board is the kanban widget: three fixed columns of tasks that can be
// moved between columns.
package board

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired = errors.New("board: title is required")
	ErrNotFound      = errors.New("board: task not found")
	ErrUnknownColumn = errors.New("board: unknown column")
)

type ColumnID string

const (
	Todo       ColumnID = "todo"
	InProgress ColumnID = "in-progress"
	Done       ColumnID = "done"
)

// Columns lists the column ids in display order.
var Columns = []ColumnID{Todo, InProgress, Done}

func (c ColumnID) Title() string {
	switch c {
	case Todo:
		return "To Do"
	case InProgress:
		return "In Progress"
	case Done:
		return "Done"
	default:
		return string(c)
	}
}

func (c ColumnID) Valid() bool {
	return c == Todo || c == InProgress || c == Done
}

type Priority string

const (
	Low    Priority = "low"
	Medium Priority = "medium"
	High   Priority = "high"
)

// ParsePriority accepts low, medium or high in any case; anything else is medium.
func ParsePriority(s string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case Low:
		return Low
	case High:
		return High
	default:
		return Medium
	}
}

// Next cycles low -> medium -> high -> low.
func (p Priority) Next() Priority {
	switch p {
	case Low:
		return Medium
	case Medium:
		return High
	default:
		return Low
	}
}

type Task struct {
	ID          string
	Column      ColumnID
	Title       string
	Description string
	Priority    Priority
	CreatedAt   time.Time
}

// Board keeps each column's tasks in insertion order.
type Board struct {
	columns map[ColumnID][]Task
}

// New builds a board from stored tasks, which are expected in column order.
// Tasks with an unknown column land in Todo.
func New(tasks []Task) *Board {
	b := &Board{columns: make(map[ColumnID][]Task, len(Columns))}
	for _, t := range tasks {
		if !t.Column.Valid() {
			t.Column = Todo
		}
		b.columns[t.Column] = append(b.columns[t.Column], t)
	}
	return b
}

// Column returns a copy of the tasks in one column.
func (b *Board) Column(id ColumnID) []Task {
	src := b.columns[id]
	out := make([]Task, len(src))
	copy(out, src)
	return out
}

// Tasks returns every task, column by column.
func (b *Board) Tasks() []Task {
	var out []Task
	for _, c := range Columns {
		out = append(out, b.columns[c]...)
	}
	return out
}

func (b *Board) Find(id string) (Task, bool) {
	if c, i := b.locate(id); i >= 0 {
		return b.columns[c][i], true
	}
	return Task{}, false
}

// Add appends a new task to a column.
func (b *Board) Add(column ColumnID, title, description string, priority Priority, now time.Time) (Task, error) {
	if !column.Valid() {
		return Task{}, ErrUnknownColumn
	}
	if strings.TrimSpace(title) == "" {
		return Task{}, ErrTitleRequired
	}
	if priority == "" {
		priority = Medium
	}
	t := Task{
		ID:          uuid.NewString(),
		Column:      column,
		Title:       strings.TrimSpace(title),
		Description: description,
		Priority:    priority,
		CreatedAt:   now,
	}
	b.columns[column] = append(b.columns[column], t)
	return t, nil
}

// Move takes a task out of its column and appends it to target. Moving a task
// onto its own column leaves it where it is.
func (b *Board) Move(id string, target ColumnID) (Task, error) {
	if !target.Valid() {
		return Task{}, ErrUnknownColumn
	}
	src, i := b.locate(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}
	t := b.columns[src][i]
	if src == target {
		return t, nil
	}
	b.columns[src] = append(b.columns[src][:i:i], b.columns[src][i+1:]...)
	t.Column = target
	b.columns[target] = append(b.columns[target], t)
	return t, nil
}

func (b *Board) Remove(id string) error {
	c, i := b.locate(id)
	if i < 0 {
		return ErrNotFound
	}
	b.columns[c] = append(b.columns[c][:i:i], b.columns[c][i+1:]...)
	return nil
}

// Position returns the index of a task within its column.
func (b *Board) Position(id string) int {
	_, i := b.locate(id)
	return i
}

func (b *Board) locate(id string) (ColumnID, int) {
	for _, c := range Columns {
		for i, t := range b.columns[c] {
			if t.ID == id {
				return c, i
			}
		}
	}
	return "", -1
}

// Samples returns the tasks a new board starts with.
func Samples(now time.Time) []Task {
	return []Task{
		{ID: uuid.NewString(), Column: Todo, Title: "Design the login page", Description: "Create the UI design for the login page", Priority: High, CreatedAt: now},
		{ID: uuid.NewString(), Column: Todo, Title: "Research new tech", Description: "Read up on what changed in the UI toolkit", Priority: Medium, CreatedAt: now},
		{ID: uuid.NewString(), Column: InProgress, Title: "API integration", Description: "Connect the front end to the backend API", Priority: High, CreatedAt: now},
		{ID: uuid.NewString(), Column: Done, Title: "Project setup", Description: "Set up project structure and dependencies", Priority: Low, CreatedAt: now},
	}
}
