package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/widgetdeck/internal/board"
	"github.com/jask/widgetdeck/internal/calc"
	"github.com/jask/widgetdeck/internal/calendar"
	"github.com/jask/widgetdeck/internal/clock"
	"github.com/jask/widgetdeck/internal/config"
	"github.com/jask/widgetdeck/internal/counter"
	"github.com/jask/widgetdeck/internal/database/repository"
	"github.com/jask/widgetdeck/internal/gallery"
	"github.com/jask/widgetdeck/internal/notes"
)

const appName = "widgetdeck"

const (
	tabCalc = iota
	tabCounter
	tabNotes
	tabBoard
	tabCalendar
	tabClock
	tabGallery
)

var tabNames = []string{"Calculator", "Counter", "Notes", "Board", "Calendar", "Clock", "Gallery"}

// Repos are the stores the shell persists through. Any of them may be nil,
// in which case that widget keeps its state in memory only.
type Repos struct {
	Notes  *repository.NoteRepo
	Events *repository.EventRepo
	Tasks  *repository.TaskRepo
	Tape   *repository.TapeRepo
	State  *repository.StateRepo
}

// App is the root bubbletea model: a tab bar over the widgets.
type App struct {
	ctx    context.Context
	cfg    config.Config
	repos  Repos
	log    *zap.Logger
	keys   keyMap
	now    func() time.Time
	width  int
	height int
	active int
	status string
	isErr  bool

	calc *calc.Accumulator
	tape []repository.TapeEntry

	counter *counter.Counter

	notes notesView

	board boardView

	cal calendarView

	clock    clock.Clock
	clockNow time.Time

	gallery      *gallery.Gallery
	galleryErr   error
	galleryIndex int
}

// Option customises an App.
type Option func(*App)

// WithLogger routes shell diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.log = logger
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

func New(ctx context.Context, cfg config.Config, repos Repos, opts ...Option) *App {
	a := &App{
		ctx:   ctx,
		cfg:   cfg,
		repos: repos,
		log:   zap.NewNop(),
		keys:  newKeyMap(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if i := config.TabIndex(cfg.UI.StartTab); i >= 0 {
		a.active = i
	}
	a.calc = calc.New(
		calc.WithPrecision(cfg.Calculator.Precision),
		calc.WithMaxDigits(cfg.Calculator.MaxEntry),
		calc.WithErrorText(cfg.Calculator.ErrorText),
	)
	a.counter = counter.New(0)
	a.notes = newNotesView()
	a.board = newBoardView()
	a.cal = newCalendarView(a.now())
	a.clock = clock.Clock{Hour12: cfg.Clock.Hour12, Locale: cfg.Clock.Locale}
	a.clockNow = a.now()
	a.gallery = gallery.New(nil)
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.loadTape(),
		a.loadNotes(),
		a.loadTasks(),
		a.loadEvents(),
		a.loadWidgetState(),
		a.loadGallery(),
		tickCmd(),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.notes.resize(m.Width)
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case tickMsg:
		a.clockNow = time.Time(m)
		return a, tickCmd()
	case tapeMsg:
		a.tape = mergeTape([]repository.TapeEntry(m), a.tape, a.cfg.Calculator.TapeSize)
	case notesMsg:
		a.notes.load([]notes.Note(m))
	case tasksMsg:
		a.board.load([]board.Task(m))
	case eventsMsg:
		a.cal.load([]calendar.Event(m))
	case widgetStateMsg:
		a.counter.Set(m.counter)
		a.clock.Hour12 = m.hour12
		a.galleryIndex = m.galleryIndex
		a.gallery.Seek(a.galleryIndex)
	case galleryMsg:
		a.galleryErr = m.err
		if m.gallery != nil {
			a.gallery = m.gallery
			a.gallery.Seek(a.galleryIndex)
		}
	case statusMsg:
		a.status, a.isErr = string(m), false
	case errMsg:
		a.log.Error("widget command failed", zap.Int("tab", a.active), zap.Error(m.error))
		a.status, a.isErr = "error: "+m.Error(), true
	default:
		return a, a.forwardToInput(msg)
	}
	return a, nil
}

// forwardToInput hands non-key messages, such as cursor blinks, to the
// focused text field.
func (a *App) forwardToInput(msg tea.Msg) tea.Cmd {
	if !a.capturing() {
		return nil
	}
	var cmd tea.Cmd
	switch a.active {
	case tabNotes:
		v := &a.notes
		switch {
		case v.mode == notesSearching:
			v.search, cmd = v.search.Update(msg)
		case v.focus == 0:
			v.title, cmd = v.title.Update(msg)
		default:
			v.content, cmd = v.content.Update(msg)
		}
	case tabBoard:
		a.board.input, cmd = a.board.input.Update(msg)
	case tabCalendar:
		a.cal.input, cmd = a.cal.input.Update(msg)
	}
	return cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := a.keys.global
	if key.Matches(msg, g.Quit) {
		return a, tea.Quit
	}
	// Open text inputs take every other key.
	if !a.capturing() {
		switch {
		case key.Matches(msg, g.NextTab):
			a.switchTab((a.active + 1) % len(tabNames))
			return a, nil
		case key.Matches(msg, g.PrevTab):
			a.switchTab((a.active - 1 + len(tabNames)) % len(tabNames))
			return a, nil
		}
		for i, b := range g.Jump {
			if key.Matches(msg, b) {
				a.switchTab(i)
				return a, nil
			}
		}
	}

	switch a.active {
	case tabCalc:
		return a, a.updateCalc(msg)
	case tabCounter:
		return a, a.updateCounter(msg)
	case tabNotes:
		return a, a.updateNotes(msg)
	case tabBoard:
		return a, a.updateBoard(msg)
	case tabCalendar:
		return a, a.updateCalendar(msg)
	case tabClock:
		return a, a.updateClock(msg)
	case tabGallery:
		return a, a.updateGallery(msg)
	}
	return a, nil
}

func (a *App) switchTab(i int) {
	if i == a.active {
		return
	}
	a.active = i
	a.status, a.isErr = "", false
	a.log.Debug("switch tab", zap.String("tab", tabNames[i]))
}

// capturing reports whether a text field on the active tab has focus.
func (a *App) capturing() bool {
	switch a.active {
	case tabNotes:
		return a.notes.capturing()
	case tabBoard:
		return a.board.adding
	case tabCalendar:
		return a.cal.adding
	}
	return false
}

func (a *App) setStatus(format string, args ...any) {
	a.status, a.isErr = fmt.Sprintf(format, args...), false
}

func (a *App) setError(err error) {
	a.status, a.isErr = err.Error(), true
}

func (a *App) View() string {
	var body string
	switch a.active {
	case tabCalc:
		body = a.viewCalc()
	case tabCounter:
		body = a.viewCounter()
	case tabNotes:
		body = a.viewNotes()
	case tabBoard:
		body = a.viewBoard()
	case tabCalendar:
		body = a.viewCalendar()
	case tabClock:
		body = a.viewClock()
	case tabGallery:
		body = a.viewGallery()
	}
	header := renderHeader(appName, a.active, a.width)
	status := renderStatus(a.status, a.isErr, a.width)
	footer := renderFooter(a.footerBindings(), a.width)
	return placeWithFooter(lipgloss.JoinVertical(lipgloss.Left, header, "", body), status, footer, a.width, a.height)
}

func (a *App) footerBindings() []key.Binding {
	var tabKeys []key.Binding
	switch a.active {
	case tabCalc:
		tabKeys = a.keys.calc.help()
	case tabCounter:
		tabKeys = a.keys.counter.help()
	case tabNotes:
		tabKeys = a.notesHelp()
	case tabBoard:
		tabKeys = a.boardHelp()
	case tabCalendar:
		tabKeys = a.calendarHelp()
	case tabClock:
		tabKeys = []key.Binding{a.keys.clock.Toggle}
	case tabGallery:
		tabKeys = []key.Binding{a.keys.gallery.Prev, a.keys.gallery.Next}
	}
	if a.capturing() {
		return append(tabKeys, a.keys.global.Quit)
	}
	return append(tabKeys, a.keys.global.NextTab, a.keys.global.Quit)
}

// ---------------------------------------------------------------------------
// Loading commands
// ---------------------------------------------------------------------------

func (a *App) loadTape() tea.Cmd {
	return func() tea.Msg {
		if a.repos.Tape == nil {
			return nil
		}
		list, err := a.repos.Tape.Recent(a.ctx, a.cfg.Calculator.TapeSize)
		if err != nil {
			return errMsg{fmt.Errorf("load tape: %w", err)}
		}
		return tapeMsg(list)
	}
}

func (a *App) loadNotes() tea.Cmd {
	return func() tea.Msg {
		if a.repos.Notes == nil {
			return nil
		}
		list, err := a.repos.Notes.List(a.ctx)
		if err != nil {
			return errMsg{fmt.Errorf("load notes: %w", err)}
		}
		return notesMsg(list)
	}
}

func (a *App) loadTasks() tea.Cmd {
	return func() tea.Msg {
		if a.repos.Tasks == nil {
			return tasksMsg(board.Samples(a.now()))
		}
		list, err := a.repos.Tasks.List(a.ctx)
		if err != nil {
			return errMsg{fmt.Errorf("load board: %w", err)}
		}
		return tasksMsg(list)
	}
}

func (a *App) loadEvents() tea.Cmd {
	return func() tea.Msg {
		if a.repos.Events == nil {
			return nil
		}
		list, err := a.repos.Events.List(a.ctx)
		if err != nil {
			return errMsg{fmt.Errorf("load events: %w", err)}
		}
		return eventsMsg(list)
	}
}

func (a *App) loadWidgetState() tea.Cmd {
	return func() tea.Msg {
		if a.repos.State == nil {
			return nil
		}
		var (
			m   widgetStateMsg
			err error
		)
		m.counter, err = a.repos.State.GetInt(a.ctx, repository.StateCounter, 0)
		if err == nil {
			m.hour12, err = a.repos.State.GetBool(a.ctx, repository.StateClockHour12, a.cfg.Clock.Hour12)
		}
		if err == nil {
			m.galleryIndex, err = a.repos.State.GetInt(a.ctx, repository.StateGalleryIndex, 0)
		}
		if err != nil {
			return errMsg{fmt.Errorf("load widget state: %w", err)}
		}
		return m
	}
}

func (a *App) loadGallery() tea.Cmd {
	dir := a.cfg.Gallery.Dir
	return func() tea.Msg {
		if dir == "" {
			return nil
		}
		g, err := gallery.Load(dir)
		return galleryMsg{gallery: g, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// persist runs a repository write off the update loop. Failures come back as
// errMsg; success is silent.
func (a *App) persist(what string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		if err := fn(ctx); err != nil {
			return errMsg{fmt.Errorf("%s: %w", what, err)}
		}
		return nil
	}
}

func (a *App) saveInt(k string, n int) tea.Cmd {
	if a.repos.State == nil {
		return nil
	}
	return a.persist("save "+k, func(ctx context.Context) error {
		return a.repos.State.SetInt(ctx, k, n)
	})
}

func (a *App) saveBool(k string, b bool) tea.Cmd {
	if a.repos.State == nil {
		return nil
	}
	return a.persist("save "+k, func(ctx context.Context) error {
		return a.repos.State.SetBool(ctx, k, b)
	})
}

var errNoSelection = errors.New("nothing selected")
