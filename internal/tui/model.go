// Package tui implements the interactive gradebook viewer.
package tui

import (
	"bytes"
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/classware/gradeflow/internal/classify"
	"github.com/classware/gradeflow/internal/grade"
	"github.com/classware/gradeflow/internal/model"
	"github.com/classware/gradeflow/internal/prefs"
	"github.com/classware/gradeflow/internal/roster"
)

// State tracks the load lifecycle: loading → browsing | failed. There is no
// retry state; a failed load is terminal for the session.
type State int

const (
	StateLoading State = iota
	StateBrowsing
	StateFailed
)

// Model holds the viewer state.
type Model struct {
	cfg    Config
	keymap KeyMap
	theme  Theme
	prefs  prefs.Preferences

	roster   *roster.Roster
	engine   *grade.Engine
	index    []model.StudentIndexItem
	filtered []model.StudentIndexItem

	search    textinput.Model
	searching bool
	open      map[string]bool
	cursor    int

	width  int
	height int

	state    State
	err      error
	quitting bool
}

// newModel creates a viewer with the given configuration.
func newModel(cfg Config) Model {
	search := textinput.New()
	search.Placeholder = "Search by name or ID..."
	search.Prompt = "/ "
	search.CharLimit = 64

	return Model{
		cfg:    cfg,
		keymap: DefaultKeyMap(),
		theme:  ThemeFor(cfg.Prefs.Theme),
		prefs:  cfg.Prefs,
		search: search,
		open:   make(map[string]bool),
		state:  StateLoading,
	}
}

// Init starts the single load of the session.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadRoster(), textinput.Blink)
}

// loadRoster fetches and parses the gradebook asynchronously. Quitting
// while the command runs simply discards its message.
func (m Model) loadRoster() tea.Cmd {
	source := m.cfg.Source
	return func() tea.Msg {
		data, err := roster.Fetch(context.Background(), source)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		ro, err := roster.Load(bytes.NewReader(data))
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return rosterLoadedMsg{roster: ro}
	}
}

// savePrefs persists the current preferences in the background.
func (m Model) savePrefs() tea.Cmd {
	if m.cfg.Store == nil {
		return nil
	}
	store, p := m.cfg.Store, m.prefs
	return func() tea.Msg {
		return prefsSavedMsg{err: store.Save(context.Background(), p)}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case rosterLoadedMsg:
		m.roster = msg.roster
		m.engine = grade.NewEngine(classify.New(), msg.roster.Points)
		m.index = roster.BuildIndex(msg.roster)
		m.filtered = m.index
		m.cursor = 0
		m.state = StateBrowsing
		return m, nil

	case loadFailedMsg:
		m.err = msg.err
		m.state = StateFailed
		return m, nil

	case prefsSavedMsg:
		// Preference writes are best effort; a failure only costs the
		// next session its remembered toggles.
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state != StateBrowsing {
		if key.Matches(msg, m.keymap.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Home):
		m.cursor = 0

	case key.Matches(msg, m.keymap.End):
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		}

	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		m.prefs.Collapsed = false
		return m, m.search.Focus()

	case key.Matches(msg, m.keymap.ToggleScores):
		m.prefs.ShowScores = !m.prefs.ShowScores
		return m, m.savePrefs()

	case key.Matches(msg, m.keymap.ToggleStatus):
		m.prefs.ShowStatus = !m.prefs.ShowStatus
		return m, m.savePrefs()

	case key.Matches(msg, m.keymap.ToggleCollapse):
		m.prefs.Collapsed = !m.prefs.Collapsed
		return m, m.savePrefs()

	case key.Matches(msg, m.keymap.CycleTheme):
		m.prefs.Theme = NextTheme(m.prefs.Theme)
		m.theme = ThemeFor(m.prefs.Theme)
		return m, m.savePrefs()

	case key.Matches(msg, m.keymap.ToggleGroup):
		if b := m.currentBreakdown(); b != nil {
			n := int(msg.String()[0] - '1')
			if n >= 0 && n < len(b.Categories) {
				id := b.Categories[n].ID
				m.open[id] = !m.open[id]
			}
		}
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.CloseSearch) {
		m.searching = false
		m.search.Blur()
		if msg.String() == "esc" {
			m.search.SetValue("")
			m.applyFilter()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter narrows the index to the current query, keeping sort order.
func (m *Model) applyFilter() {
	m.filtered = roster.FilterIndex(m.index, m.search.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// currentStudent returns the record under the cursor, nil when the filter
// matches nothing.
func (m Model) currentStudent() *model.StudentRecord {
	if m.roster == nil || m.cursor >= len(m.filtered) {
		return nil
	}
	rec := m.roster.Students[m.filtered[m.cursor].RowIndex]
	return &rec
}

// currentBreakdown recomputes the selected student's grade view. Derived
// data is a pure projection; nothing is cached or mutated.
func (m Model) currentBreakdown() *model.Breakdown {
	rec := m.currentStudent()
	if rec == nil || m.engine == nil {
		return nil
	}
	return m.engine.Breakdown(*rec, m.roster.Header)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateLoading:
		return m.renderLoading()
	case StateFailed:
		return m.renderError()
	default:
		return m.renderBrowse()
	}
}
