package cardview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/pokecard/internal/card"
	"github.com/zjrosen/pokecard/internal/keys"
	"github.com/zjrosen/pokecard/internal/log"
	"github.com/zjrosen/pokecard/internal/pokemon"
)

// ToggledMsg is sent after a card's stats visibility changes.
type ToggledMsg struct {
	ID         string
	Visibility card.Visibility
}

// Model is one interactive card. It owns the stats visibility flag; every
// other display attribute is derived from the record on each render.
type Model struct {
	id         string
	record     pokemon.Record
	presenter  card.Presenter
	visibility card.Visibility
	opts       Options
	keys       keys.KeyMap
}

// New creates a card model. id must be unique among the cards on screen;
// it scopes the toggle button's click zone.
func New(id string, rec pokemon.Record, presenter card.Presenter, opts Options) Model {
	return Model{
		id:        id,
		record:    rec,
		presenter: presenter,
		opts:      opts,
		keys:      keys.DefaultKeyMap(),
	}
}

// WithVisibility returns a copy with the given stats visibility.
func (m Model) WithVisibility(v card.Visibility) Model {
	m.visibility = v
	return m
}

// SetRecord replaces the record, keeping the current visibility.
func (m Model) SetRecord(rec pokemon.Record) Model {
	m.record = rec
	return m
}

// ID returns the card identifier.
func (m Model) ID() string { return m.id }

// Record returns the record being displayed.
func (m Model) Record() pokemon.Record { return m.record }

// Visibility returns the current stats visibility.
func (m Model) Visibility() card.Visibility { return m.visibility }

// State derives the display state for the current record and visibility.
func (m Model) State() card.DisplayState {
	return m.presenter.Present(m.record, m.visibility)
}

// ToggleZoneID returns the bubblezone ID of the stats button.
func (m Model) ToggleZoneID() string {
	return "cardview:" + m.id + ":toggle"
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles the stats toggle key and clicks on the toggle button.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ToggleStats) {
			return m.toggle()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if z := zone.Get(m.ToggleZoneID()); z != nil && z.InBounds(msg) {
			return m.toggle()
		}
	}
	return m, nil
}

func (m Model) toggle() (Model, tea.Cmd) {
	m.visibility = m.visibility.Toggle()
	log.Debug(log.CatUI, "Toggled stats", "card", m.id, "stats", m.visibility.String())

	id, v := m.id, m.visibility
	return m, func() tea.Msg {
		return ToggledMsg{ID: id, Visibility: v}
	}
}

// View renders the card with its toggle button marked for click detection.
// The caller must pass the final frame through zone.Scan.
func (m Model) View() string {
	return render(m.State(), m.opts, m.ToggleZoneID())
}
