package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

type globalKeys struct {
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Jump    []key.Binding
}

func newGlobalKeys() globalKeys {
	g := globalKeys{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	}
	for i := range tabNames {
		k := fkeyLabel(i)
		g.Jump = append(g.Jump, key.NewBinding(key.WithKeys(k), key.WithHelp(k, tabNames[i])))
	}
	return g
}

// fkeyLabel is the function key that jumps to tab i, as bubbletea names it.
func fkeyLabel(i int) string {
	return fmt.Sprintf("f%d", i+1)
}

type calcKeys struct {
	Digits    key.Binding
	Operators key.Binding
	Equals    key.Binding
	Backspace key.Binding
	Clear     key.Binding
}

func newCalcKeys() calcKeys {
	return calcKeys{
		Digits:    key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."), key.WithHelp("0-9 .", "digits")),
		Operators: key.NewBinding(key.WithKeys("+", "-", "*", "x", "/"), key.WithHelp("+ - * /", "operator")),
		Equals:    key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "equals")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Clear:     key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c", "clear")),
	}
}

func (k calcKeys) help() []key.Binding {
	return []key.Binding{k.Digits, k.Operators, k.Equals, k.Backspace, k.Clear}
}

type counterKeys struct {
	Increment key.Binding
	Decrement key.Binding
	Reset     key.Binding
}

func newCounterKeys() counterKeys {
	return counterKeys{
		Increment: key.NewBinding(key.WithKeys("+", "up", "k"), key.WithHelp("+/↑", "increment")),
		Decrement: key.NewBinding(key.WithKeys("-", "down", "j"), key.WithHelp("-/↓", "decrement")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	}
}

func (k counterKeys) help() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.Reset}
}

type notesKeys struct {
	Up      key.Binding
	Down    key.Binding
	Search  key.Binding
	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Save    key.Binding
	Cancel  key.Binding
	Field   key.Binding
}

func newNotesKeys() notesKeys {
	return notesKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Edit:    key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Field:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "field")),
	}
}

type boardKeys struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Move     key.Binding
	Delete   key.Binding
	Priority key.Binding
	Submit   key.Binding
	Cancel   key.Binding
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Move:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Priority: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "priority")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

type calendarKeys struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Add       key.Binding
	Delete    key.Binding
	NextEvent key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

func newCalendarKeys() calendarKeys {
	return calendarKeys{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add event")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete event")),
		NextEvent: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next event")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

type clockKeys struct {
	Toggle key.Binding
}

type galleryKeys struct {
	Prev key.Binding
	Next key.Binding
}

func newGalleryKeys() galleryKeys {
	return galleryKeys{
		Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous")),
		Next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
	}
}

type keyMap struct {
	global   globalKeys
	calc     calcKeys
	counter  counterKeys
	notes    notesKeys
	board    boardKeys
	calendar calendarKeys
	clock    clockKeys
	gallery  galleryKeys
}

func newKeyMap() keyMap {
	return keyMap{
		global:   newGlobalKeys(),
		calc:     newCalcKeys(),
		counter:  newCounterKeys(),
		notes:    newNotesKeys(),
		board:    newBoardKeys(),
		calendar: newCalendarKeys(),
		clock:    clockKeys{Toggle: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "12/24h"))},
		gallery:  newGalleryKeys(),
	}
}
