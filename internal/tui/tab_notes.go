package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/widgetdeck/internal/notes"
)

type notesMode int

const (
	notesBrowse notesMode = iota
	notesSearching
	notesEditing
	notesConfirmDelete
)

type notesView struct {
	book    *notes.Book
	cursor  int
	mode    notesMode
	search  textinput.Model
	title   textinput.Model
	content textarea.Model
	editID  string // empty while creating
	focus   int    // 0 title, 1 content
}

func newNotesView() notesView {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search notes"

	title := textinput.New()
	title.Prompt = "Title: "
	title.CharLimit = 120

	content := textarea.New()
	content.Placeholder = "Write something..."
	content.ShowLineNumbers = false
	content.SetHeight(8)
	content.SetWidth(60)

	return notesView{book: notes.NewBook(nil), search: search, title: title, content: content}
}

func (v *notesView) load(list []notes.Note) {
	v.book = notes.NewBook(list)
	v.clampCursor()
}

func (v *notesView) resize(width int) {
	if width > 10 {
		v.content.SetWidth(min(width-8, 100))
	}
}

func (v *notesView) capturing() bool {
	return v.mode == notesSearching || v.mode == notesEditing
}

// visible is the list after the search filter.
func (v *notesView) visible() []notes.Note {
	return v.book.Filter(v.search.Value())
}

func (v *notesView) selected() (notes.Note, bool) {
	list := v.visible()
	if v.cursor < 0 || v.cursor >= len(list) {
		return notes.Note{}, false
	}
	return list[v.cursor], true
}

func (v *notesView) clampCursor() {
	n := len(v.visible())
	v.cursor = max(0, min(v.cursor, n-1))
}

func (v *notesView) openEditor(n notes.Note, id string) tea.Cmd {
	v.mode = notesEditing
	v.editID = id
	v.title.SetValue(n.Title)
	v.content.SetValue(n.Content)
	v.focus = 0
	v.content.Blur()
	return v.title.Focus()
}

func (v *notesView) closeEditor() {
	v.mode = notesBrowse
	v.title.Blur()
	v.content.Blur()
	v.title.Reset()
	v.content.Reset()
	v.editID = ""
}

func (a *App) updateNotes(msg tea.KeyMsg) tea.Cmd {
	v := &a.notes
	k := a.keys.notes
	switch v.mode {
	case notesSearching:
		switch msg.Type {
		case tea.KeyEnter:
			v.mode = notesBrowse
			v.search.Blur()
			if term := v.search.Value(); term != "" && len(v.visible()) == 0 {
				if s, ok := v.book.Suggest(term); ok {
					a.setStatus("no notes match %q, did you mean %q?", term, s)
				}
			}
			return nil
		case tea.KeyEsc:
			v.mode = notesBrowse
			v.search.Blur()
			v.search.Reset()
			v.clampCursor()
			return nil
		}
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		v.cursor = 0
		return cmd

	case notesEditing:
		switch {
		case key.Matches(msg, k.Save):
			return a.saveNote()
		case key.Matches(msg, k.Cancel):
			v.closeEditor()
			return nil
		case key.Matches(msg, k.Field):
			v.focus = 1 - v.focus
			if v.focus == 0 {
				v.content.Blur()
				return v.title.Focus()
			}
			v.title.Blur()
			return v.content.Focus()
		}
		var cmd tea.Cmd
		if v.focus == 0 {
			v.title, cmd = v.title.Update(msg)
		} else {
			v.content, cmd = v.content.Update(msg)
		}
		return cmd

	case notesConfirmDelete:
		v.mode = notesBrowse
		if !key.Matches(msg, k.Confirm) {
			a.setStatus("delete cancelled")
			return nil
		}
		return a.deleteNote()
	}

	switch {
	case key.Matches(msg, k.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, k.Down):
		if v.cursor < len(v.visible())-1 {
			v.cursor++
		}
	case key.Matches(msg, k.Search):
		v.mode = notesSearching
		return v.search.Focus()
	case key.Matches(msg, k.Cancel):
		v.search.Reset()
		v.clampCursor()
	case key.Matches(msg, k.New):
		return v.openEditor(notes.Note{}, "")
	case key.Matches(msg, k.Edit):
		n, ok := v.selected()
		if !ok {
			a.setError(errNoSelection)
			return nil
		}
		return v.openEditor(n, n.ID)
	case key.Matches(msg, k.Delete):
		if n, ok := v.selected(); ok {
			v.mode = notesConfirmDelete
			a.setStatus("delete %q? y to confirm", n.Title)
		}
	}
	return nil
}

func (a *App) saveNote() tea.Cmd {
	v := &a.notes
	var (
		n   notes.Note
		err error
	)
	if v.editID == "" {
		n, err = v.book.Create(v.title.Value(), v.content.Value(), a.now())
	} else {
		n, err = v.book.Update(v.editID, v.title.Value(), v.content.Value(), a.now())
	}
	if err != nil {
		a.setError(err)
		return nil
	}
	created := v.editID == ""
	v.closeEditor()
	if created {
		v.search.Reset()
		v.cursor = 0
	}
	a.setStatus("saved %q", n.Title)
	if a.repos.Notes == nil {
		return nil
	}
	return a.persist("save note", func(ctx context.Context) error {
		return a.repos.Notes.Upsert(ctx, n)
	})
}

func (a *App) deleteNote() tea.Cmd {
	v := &a.notes
	n, ok := v.selected()
	if !ok {
		return nil
	}
	if err := v.book.Delete(n.ID); err != nil {
		a.setError(err)
		return nil
	}
	v.clampCursor()
	a.setStatus("deleted %q", n.Title)
	if a.repos.Notes == nil {
		return nil
	}
	return a.persist("delete note", func(ctx context.Context) error {
		return a.repos.Notes.Delete(ctx, n.ID)
	})
}

func (a *App) notesHelp() []key.Binding {
	k := a.keys.notes
	switch a.notes.mode {
	case notesEditing:
		return []key.Binding{k.Field, k.Save, k.Cancel}
	case notesSearching:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	case notesConfirmDelete:
		return []key.Binding{k.Confirm, key.NewBinding(key.WithKeys("n"), key.WithHelp("any", "cancel"))}
	}
	return []key.Binding{k.Up, k.Down, k.Search, k.New, k.Edit, k.Delete}
}

func (a *App) viewNotes() string {
	v := &a.notes
	if v.mode == notesEditing {
		heading := "New note"
		if v.editID != "" {
			heading = "Edit note"
		}
		return renderSection(heading, v.title.View()+"\n\n"+v.content.View(), 0, true)
	}

	list := v.visible()
	var lines []string
	if v.mode == notesSearching || v.search.Value() != "" {
		lines = append(lines, v.search.View(), "")
	}
	if len(list) == 0 {
		if v.book.Len() == 0 {
			lines = append(lines, dimStyle.Render("no notes yet, press n to write one"))
		} else {
			lines = append(lines, dimStyle.Render("no matching notes"))
		}
	}
	dateStyle := lipgloss.NewStyle().Foreground(noteDateColor)
	for i, n := range list {
		stamp := n.CreatedAt.Local().Format("2006-01-02 15:04")
		if n.Edited() {
			stamp += " (edited)"
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s", cursorMarker(i == v.cursor), truncate(n.Title, 40), dateStyle.Render(stamp)))
	}
	left := renderSection(fmt.Sprintf("Notes (%d)", v.book.Len()), strings.Join(lines, "\n"), 60, true)

	preview := dimStyle.Render("(nothing selected)")
	if n, ok := v.selected(); ok {
		preview = titleStyle.Render(n.Title) + "\n\n" + n.Content
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", renderSection("Preview", preview, 40, false))
}
