package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treat-hunt/internal/core"
	"github.com/vovakirdan/treat-hunt/internal/games/treats"
	"github.com/vovakirdan/treat-hunt/internal/registry"
	"github.com/vovakirdan/treat-hunt/internal/storage"
)

// RoundSaver persists finished rounds.
type RoundSaver interface {
	SaveRound(r storage.RoundRecord) (string, error)
}

// Store is the persistence the TUI uses. *storage.Store implements it.
type Store interface {
	RoundSaver
	RoundLister
}

// Optional game capabilities, checked at runtime.
type (
	reporter interface {
		Summary() treats.Summary
	}
	resizer interface {
		Resize(w, h int)
	}
	sinkSetter interface {
		SetSink(s treats.Sink)
	}
)

type viewMode int

const (
	viewGame viewMode = iota
	viewScores
)

// Model is the Bubble Tea model for a Treat Hunt session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	view       viewMode
	scoreboard ScoreboardModel
	summary    *treats.Summary // Open stats modal
	lastSaved  string          // ID of the last saved round
	quitting   bool
}

// NewModel creates a model for game. store and logger may be nil.
func NewModel(game registry.Game, store Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if s, ok := game.(sinkSetter); ok {
		s.SetSink(NewLogSink(logger))
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		scoreboard: NewScoreboardModel(store, game.ID(), game.Title(), cfg.ScreenW, cfg.ScreenH),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.view == viewScores {
		if key.Matches(msg, m.scoreboard.keys.Back) {
			m.view = viewGame
			return m, nil
		}
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Scores):
		m.view = viewScores
		m.scoreboard.Reload()
	case m.summary != nil && key.Matches(msg, m.keys.Close):
		m.summary = nil
	default:
		m.inputFrame.Set(m.keys.Action(msg))
	}
	return m, nil
}

// handleResize keeps the round running; only the screen changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)
	return m, cmd
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !wasOver:
		m.finishRound()
	case !m.gameState.GameOver:
		m.summary = nil
	}

	return m, tickCmd(m.config)
}

// finishRound opens the stats modal and saves the round (best effort).
func (m *Model) finishRound() {
	r, ok := m.game.(reporter)
	if !ok {
		return
	}
	summary := r.Summary()
	m.summary = &summary

	if m.store == nil {
		return
	}
	id, err := m.store.SaveRound(RecordFromSummary(m.game.ID(), summary))
	if err != nil {
		m.logger.Warn("could not save round", "error", err)
		return
	}
	m.lastSaved = id
	m.logger.Debug("round saved", "id", id)
}

// RecordFromSummary converts an end-of-round summary to a storage record.
func RecordFromSummary(gameID string, s treats.Summary) storage.RoundRecord {
	r := storage.RoundRecord{
		GameID:  gameID,
		Outcome: s.Outcome.String(),
		Points:  s.Points,
		Lives:   s.Lives,
		Seconds: s.Elapsed,
		Mines:   s.Mines,
	}
	for _, b := range s.Buckets {
		switch {
		case b.Kind == treats.TreatSmall && b.Multiplier == 3:
			r.TreatsX3 = b.Count
		case b.Kind == treats.TreatSmall && b.Multiplier == 2:
			r.TreatsX2 = b.Count
		case b.Kind == treats.TreatSmall:
			r.TreatsX1 = b.Count
		case b.Multiplier == 3:
			r.BigTreatsX3 = b.Count
		case b.Multiplier == 2:
			r.BigTreatsX2 = b.Count
		default:
			r.BigTreatsX1 = b.Count
		}
	}
	return r
}

// saveScreenshot writes the current screen as text under ~/.treathunt/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".treathunt", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.view == viewScores:
		return m.scoreboard.View()
	case m.summary != nil:
		hint := m.help.ShortHelpView([]key.Binding{m.keys.Start, m.keys.Restart, m.keys.Close, m.keys.Scores})
		return renderStats(*m.summary, hint, m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, store Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
