// Package notes is the reading-notes widget: a newest-first list of titled
// notes with case-insensitive search.
package notes

import (
	"errors"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

var (
	ErrTitleRequired = errors.New("notes: title is required")
	ErrNotFound      = errors.New("notes: note not found")
)

// suggestDistance is the largest edit distance offered as a "did you mean".
const suggestDistance = 3

type Note struct {
	ID        string    `toml:"id"`
	Title     string    `toml:"title"`
	Content   string    `toml:"content"`
	CreatedAt time.Time `toml:"created_at"`
	UpdatedAt time.Time `toml:"updated_at"`
}

// Edited reports whether the note changed after it was created.
func (n Note) Edited() bool {
	return !n.UpdatedAt.Equal(n.CreatedAt)
}

// Book holds notes newest first.
type Book struct {
	notes []Note
}

// NewBook wraps stored notes, which are expected newest first.
func NewBook(stored []Note) *Book {
	b := &Book{notes: make([]Note, len(stored))}
	copy(b.notes, stored)
	return b
}

func (b *Book) Len() int { return len(b.notes) }

// All returns a copy of the notes in list order.
func (b *Book) All() []Note {
	out := make([]Note, len(b.notes))
	copy(out, b.notes)
	return out
}

func (b *Book) Get(id string) (Note, bool) {
	if i := b.index(id); i >= 0 {
		return b.notes[i], true
	}
	return Note{}, false
}

// Create prepends a new note.
func (b *Book) Create(title, content string, now time.Time) (Note, error) {
	if strings.TrimSpace(title) == "" {
		return Note{}, ErrTitleRequired
	}
	n := Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	b.notes = append([]Note{n}, b.notes...)
	return n, nil
}

func (b *Book) Update(id, title, content string, now time.Time) (Note, error) {
	if strings.TrimSpace(title) == "" {
		return Note{}, ErrTitleRequired
	}
	i := b.index(id)
	if i < 0 {
		return Note{}, ErrNotFound
	}
	b.notes[i].Title = title
	b.notes[i].Content = content
	b.notes[i].UpdatedAt = now
	return b.notes[i], nil
}

func (b *Book) Delete(id string) error {
	i := b.index(id)
	if i < 0 {
		return ErrNotFound
	}
	b.notes = append(b.notes[:i], b.notes[i+1:]...)
	return nil
}

// Filter returns notes whose title or content contains term, ignoring case.
func (b *Book) Filter(term string) []Note {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return b.All()
	}
	var out []Note
	for _, n := range b.notes {
		if strings.Contains(strings.ToLower(n.Title), term) || strings.Contains(strings.ToLower(n.Content), term) {
			out = append(out, n)
		}
	}
	return out
}

// Suggest returns the title closest to term when it is within a few edits.
func (b *Book) Suggest(term string) (string, bool) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return "", false
	}
	best, bestDist := "", suggestDistance+1
	for _, n := range b.notes {
		d := levenshtein.ComputeDistance(term, strings.ToLower(n.Title))
		if d < bestDist {
			best, bestDist = n.Title, d
		}
	}
	return best, bestDist <= suggestDistance
}

func (b *Book) index(id string) int {
	for i, n := range b.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
