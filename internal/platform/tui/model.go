package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flapfight/internal/core"
	"github.com/vovakirdan/flapfight/internal/registry"
	"github.com/vovakirdan/flapfight/internal/storage"
)

// errorReporter is implemented by games that fail soft on I/O.
type errorReporter interface {
	Err() error
}

// Options tune a play session.
type Options struct {
	Store *storage.Store // Score and match history; nil disables it
	Hold  int            // Ticks a move key stays down; <= 0 uses DefaultHold
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	keys        GameKeyMap
	help        help.Model
	input       *InputLatch
	gameState   core.GameState
	quitting    bool
	resultSaved bool // Whether the result has been saved for current game over
	errs        *[]error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		store:  opts.Store,
		config: cfg,
		keys:   KeyMapFor(game.ID()),
		help:   h,
		input:  NewInputLatch(opts.Hold),
		errs:   new([]error),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.report(m.game)
	return tickCmd(m.config.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKey(msg, m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. Games draw through a
// viewport, so the round keeps running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.input.Frame()

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.report(m.game)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.input.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	m.input.Advance()

	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.report(m.game)
		m.resultSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult stores the finished round: a match row for two-player games,
// a score row otherwise.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}
	if mg, ok := m.game.(registry.MatchGame); ok {
		if _, err := m.store.SaveMatch(storage.MatchFromOutcome(m.game.ID(), mg.Outcome())); err != nil {
			*m.errs = append(*m.errs, err)
		}
		return
	}
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			*m.errs = append(*m.errs, err)
		}
	}
}

// report keeps a game's soft failure for logging after the program exits.
func (m *Model) report(g registry.Game) {
	r, ok := g.(errorReporter)
	if !ok {
		return
	}
	if err := r.Err(); err != nil {
		for _, seen := range *m.errs {
			if seen == err {
				return
			}
		}
		*m.errs = append(*m.errs, err)
	}
}

// Errors returns the problems collected while playing.
func (m Model) Errors() []error {
	return *m.errs
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		*m.errs = append(*m.errs, err)
		return
	}
	dir := filepath.Join(home, ".flapfight", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		*m.errs = append(*m.errs, err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		*m.errs = append(*m.errs, err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for one game. Problems that did not
// stop play are returned alongside the program error.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) ([]error, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m.Errors(), err
	}
	return model.Errors(), err
}
