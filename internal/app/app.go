// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/pokecard/internal/card"
	"github.com/zjrosen/pokecard/internal/keys"
	"github.com/zjrosen/pokecard/internal/log"
	"github.com/zjrosen/pokecard/internal/pokemon"
	"github.com/zjrosen/pokecard/internal/ui/cardview"
	"github.com/zjrosen/pokecard/internal/ui/styles"
	"github.com/zjrosen/pokecard/internal/ui/toaster"
	"github.com/zjrosen/pokecard/internal/watcher"
)

const toastDuration = 3 * time.Second

// Config holds everything the viewer needs. Records must line up with Paths.
type Config struct {
	Paths     []string
	Records   []pokemon.Record
	Presenter card.Presenter
	Card      cardview.Options

	// ShowStats is the initial visibility for every card.
	ShowStats bool

	// Loader re-reads records on reload. Nil disables reloading.
	Loader *pokemon.Loader

	// Watch enables reloading when a record file changes on disk.
	Watch         bool
	WatchDebounce time.Duration

	// DebugMode shows the last log line in a status bar.
	DebugMode bool
}

// Model is the root application state.
type Model struct {
	cards   []cardview.Model
	paths   []string
	current int

	loader *pokemon.Loader
	keys   keys.KeyMap
	help   help.Model

	// Centralized toaster - owned by app, not individual cards
	toaster toaster.Model

	width  int
	height int

	debugMode bool

	// File watcher for live reload
	watcherHandle *watcher.Watcher
	watchEvents   <-chan watcher.Event
}

// fileChangedMsg wraps a watcher event.
type fileChangedMsg watcher.Event

// recordLoadedMsg carries the result of a reload.
type recordLoadedMsg struct {
	path   string
	record pokemon.Record
	err    error
}

// New creates the viewer model. When watching fails to start the viewer
// still works; the failure is logged.
func New(cfg Config) Model {
	vis := card.VisibilityFrom(cfg.ShowStats)

	cards := make([]cardview.Model, len(cfg.Records))
	for i, rec := range cfg.Records {
		cards[i] = cardview.New(fmt.Sprintf("card-%d", i), rec, cfg.Presenter, cfg.Card).WithVisibility(vis)
	}

	km := keys.DefaultKeyMap()
	if len(cards) <= 1 {
		km = km.SingleCard()
	}
	if cfg.Loader == nil {
		km.Reload.SetEnabled(false)
	}

	m := Model{
		cards:     cards,
		paths:     cfg.Paths,
		loader:    cfg.Loader,
		keys:      km,
		help:      help.New(),
		toaster:   toaster.New(),
		debugMode: cfg.DebugMode,
	}

	if cfg.Watch && cfg.Loader != nil && len(cfg.Paths) > 0 {
		w, err := watcher.New(watcher.Config{Paths: cfg.Paths, Debounce: cfg.WatchDebounce})
		if err == nil {
			events, startErr := w.Start()
			if startErr == nil {
				m.watcherHandle = w
				m.watchEvents = events
			} else {
				// Cleanup on start failure
				_ = w.Stop()
				err = startErr
			}
		}
		if err != nil {
			log.Warn(log.CatWatcher, "Live reload disabled", "error", err)
		}
	}

	return m
}

// Init implements tea.Model interface.
func (m Model) Init() tea.Cmd {
	if m.watchEvents != nil {
		return listen(m.watchEvents)
	}
	return nil
}

// listen waits for the next watcher event.
func listen(events <-chan watcher.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return fileChangedMsg(ev)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			_ = m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.current = (m.current + 1) % len(m.cards)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.current = (m.current - 1 + len(m.cards)) % len(m.cards)
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			if m.current < len(m.paths) {
				return m, m.reloadCmd(m.paths[m.current])
			}
			return m, nil
		}
		return m.updateCurrent(msg)

	case tea.MouseMsg:
		return m.updateCurrent(msg)

	case cardview.ToggledMsg:
		log.Info(log.CatUI, "Stats toggled", "card", msg.ID, "stats", msg.Visibility.String())
		return m, nil

	case fileChangedMsg:
		log.Debug(log.CatWatcher, "Record file changed", "path", msg.Path)
		return m, tea.Batch(m.reloadCmd(msg.Path), listen(m.watchEvents))

	case recordLoadedMsg:
		name := filepath.Base(msg.path)
		if msg.err != nil {
			log.ErrorErr(log.CatLoad, "Reload failed", msg.err, "path", msg.path)
			m.toaster = m.toaster.Show("Reload failed: "+name, toaster.StyleError)
			return m, m.toaster.ScheduleDismiss(toastDuration)
		}
		for i, p := range m.paths {
			if p == msg.path && i < len(m.cards) {
				m.cards[i] = m.cards[i].SetRecord(msg.record)
			}
		}
		m.toaster = m.toaster.Show("Reloaded "+name, toaster.StyleSuccess)
		return m, m.toaster.ScheduleDismiss(toastDuration)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	}

	return m, nil
}

// updateCurrent forwards a message to the card on screen.
func (m Model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.cards) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.cards[m.current], cmd = m.cards[m.current].Update(msg)
	return m, cmd
}

// reloadCmd re-reads path, bypassing the record cache.
func (m Model) reloadCmd(path string) tea.Cmd {
	if m.loader == nil {
		return nil
	}
	loader := m.loader
	return func() tea.Msg {
		rec, err := loader.Reload(context.Background(), path)
		return recordLoadedMsg{path: path, record: rec, err: err}
	}
}

// Current returns the card on screen.
func (m Model) Current() cardview.Model {
	return m.cards[m.current]
}

// View implements tea.Model.
func (m Model) View() string {
	if len(m.cards) == 0 {
		return styles.ErrorStyle.Render("no records to show")
	}

	var sections []string
	if len(m.cards) > 1 {
		sections = append(sections, m.pagerView())
	}
	sections = append(sections, m.cards[m.current].View())

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	view = m.toaster.Below(view)
	view = lipgloss.JoinVertical(lipgloss.Left, view, m.help.View(m.keys))

	if m.debugMode {
		if last := log.Last(); last != "" {
			status := last
			if m.width > 2 {
				status = styles.TruncateString(last, m.width-2)
			}
			view = lipgloss.JoinVertical(lipgloss.Left, view, styles.StatusBarStyle.Render(status))
		}
	}

	if m.width > 0 && m.height > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}

	return zone.Scan(view)
}

// pagerView renders "‹ 2/3 charmander.yaml ›" above the card.
func (m Model) pagerView() string {
	name := ""
	if m.current < len(m.paths) {
		name = filepath.Base(m.paths[m.current])
	}
	return styles.HintStyle.Render(fmt.Sprintf("‹ %d/%d %s ›", m.current+1, len(m.cards), name))
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
	}
	return nil
}
