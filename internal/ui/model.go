package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvzen/projpick/internal/config"
	"github.com/vvzen/projpick/internal/eventbus"
	"github.com/vvzen/projpick/internal/filter"
	"github.com/vvzen/projpick/internal/source"
	"github.com/vvzen/projpick/internal/ui/input"
	"github.com/vvzen/projpick/internal/ui/selection"
	"github.com/vvzen/projpick/internal/ui/state"
	"github.com/vvzen/projpick/internal/ui/views"
)

// Rows taken by the header, query line, status line and help footer;
// the rest of the terminal height goes to the list viewport.
const reservedRows = 8

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	// Collaborators, injected at construction
	src     source.Source
	matcher filter.Matcher

	// UI-specific state not in AppState
	width    int
	height   int
	keys     input.KeyMap
	help     help.Model
	renderer *views.Renderer
}

// NewModel creates a new UI model. The initial candidate snapshot is
// fetched here so the picker starts with the full list visible; a
// source failure at this point is fatal and returned to the caller.
func NewModel(cfg *config.Config, src source.Source, bus eventbus.EventBus) (*Model, error) {
	candidates, err := src.Candidates()
	if err != nil {
		return nil, err
	}

	m := &Model{
		bus:      bus,
		config:   cfg,
		state:    state.NewAppState(candidates),
		src:      src,
		matcher:  newMatcher(cfg.Matcher),
		keys:     input.DefaultKeyMap(),
		help:     help.New(),
		renderer: views.NewRenderer(),
	}

	m.publish(eventbus.PickStartedEvent{CandidateCount: len(candidates)})

	return m, nil
}

// newMatcher maps the config matcher name to an implementation
func newMatcher(name string) filter.Matcher {
	switch name {
	case config.MatcherFuzzy:
		return filter.Fuzzy{}
	default:
		return filter.Substring{}
	}
}

// FinalQuery returns the query text at the moment the picker exited
func (m *Model) FinalQuery() string {
	return m.state.Query
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.ViewportHeight = max(msg.Height-reservedRows, 1)
		m.state.EnsureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.state.Quitting {
		return ""
	}

	return m.renderer.Render(views.ViewState{
		Width:       m.width,
		Height:      m.height,
		App:         m.state,
		ShowIndices: m.config.UISettings.ShowIndices,
		HelpModel:   m.help,
		Keys:        m.keys,
	})
}

// handleKey applies a single key event to the app state. All key
// events are total: unknown keys are ignored and nothing here can
// fault on an empty list.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state.Quitting = true
		m.publish(eventbus.PickFinishedEvent{Query: m.state.Query})
		log.Printf("Quit requested, final query: %q", m.state.Query)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.moveHighlight(selection.Next)
		return m, nil

	case key.Matches(msg, m.keys.Previous):
		m.moveHighlight(selection.Previous)
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		// Reserved for committing the highlighted item and descending
		// into sequences/shots once the source grows hierarchy.
		log.Printf("Confirm pressed on %q (not implemented)", m.state.HighlightedItem())
		return m, nil

	case key.Matches(msg, m.keys.Backspace):
		if m.state.Query == "" {
			return m, nil
		}
		runes := []rune(m.state.Query)
		m.applyQuery(string(runes[:len(runes)-1]))
		return m, nil
	}

	// Anything printable extends the query; everything else is ignored
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return m, nil
		}
		m.applyQuery(m.state.Query + string(msg.Runes))
	case tea.KeySpace:
		m.applyQuery(m.state.Query + " ")
	}

	return m, nil
}

// moveHighlight moves the highlight one step, saturating at both ends
func (m *Model) moveHighlight(dir selection.Direction) {
	old := m.state.Highlight
	m.state.Highlight = selection.Move(old, len(m.state.Filtered), dir)
	m.state.EnsureVisible()

	if m.state.Highlight != old {
		m.publish(eventbus.HighlightMovedEvent{
			OldIndex: old,
			NewIndex: m.state.Highlight,
		})
	}
}

// applyQuery replaces the query and recomputes the filtered list and
// highlight. The candidate snapshot is taken first: if the source
// fails, the state is left untouched apart from the recorded error and
// the picker stays interactive.
func (m *Model) applyQuery(newQuery string) {
	candidates, err := m.snapshot(newQuery)
	if err != nil {
		m.state.LastError = err
		m.publish(eventbus.SourceErrorEvent{Message: "candidate fetch failed", Err: err})
		log.Printf("Candidate fetch failed, keeping state: %v", err)
		return
	}
	m.state.LastError = nil

	oldFiltered := m.state.Filtered
	oldHighlight := m.state.Highlight

	m.state.Query = newQuery
	m.state.Candidates = candidates

	if newQuery == "" {
		// Empty query shows the full snapshot, highlight back to the top
		m.state.Filtered = candidates
		m.state.Highlight = 0
	} else {
		m.state.Filtered = filter.Apply(m.matcher, newQuery, candidates)
		m.state.Highlight = selection.Carry(oldFiltered, oldHighlight, m.state.Filtered)
	}

	m.state.ViewportOffset = 0
	m.state.EnsureVisible()

	m.publish(eventbus.QueryChangedEvent{Query: newQuery})
	m.publish(eventbus.FilterAppliedEvent{
		Query:      newQuery,
		MatchCount: len(m.state.Filtered),
	})
}

// snapshot returns the candidate list to filter against, honoring the
// configured refetch policy. The filter always runs over a full
// snapshot, never over the previous filtered result.
func (m *Model) snapshot(newQuery string) ([]string, error) {
	if m.config.RefetchPolicy == config.RefetchOnEmptyQueryOnly && newQuery != "" {
		return m.state.Candidates, nil
	}
	return m.src.Candidates()
}

// publish sends a diagnostic event when a bus is attached
func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}
