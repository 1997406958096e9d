package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turbo-rush/internal/core"
)

// DefaultGameOverLinger is how long the final board stays up before the
// program exits on its own.
const DefaultGameOverLinger = 2500 * time.Millisecond

// Game is the contract the platform drives. Implementations are pure
// simulations: the model feeds them one input frame per tick.
type Game interface {
	ID() string
	Title() string
	ScreenSize() (width, height int)
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configure a game session.
type Options struct {
	HoldWindow     time.Duration // How long a key press counts as held
	GameOverLinger time.Duration // Zero uses DefaultGameOverLinger
	Logger         *log.Logger
	Keys           *KeyMap // Nil uses DefaultKeyMap
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game   Game
	screen *core.Screen
	config core.RuntimeConfig

	keys   KeyMap
	mapper *KeyMapper
	held   *HeldKeys
	help   help.Model
	logger *log.Logger

	gameState  core.GameState
	gameOverAt time.Time
	linger     time.Duration
	termW      int
	termH      int
	quitting   bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	cfg.ScreenW, cfg.ScreenH = game.ScreenSize()

	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	linger := opts.GameOverLinger
	if linger <= 0 {
		linger = DefaultGameOverLinger
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   keys,
		mapper: NewKeyMapper(keys),
		held:   NewHeldKeys(opts.HoldWindow),
		help:   help.New(),
		logger: logger,
		linger: linger,
		now:    time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "phase", m.game.State().Phase)

	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.logger.Info("quit requested", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	// Only Confirm dismisses the final board; steering and fire keys are
	// usually still auto-repeating from the moment of the crash
	if m.gameState.GameOver() {
		if action == core.ActionConfirm {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.held.Press(action, m.now())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.gameState.GameOver() {
		if now.Sub(m.gameOverAt) >= m.linger {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.config.TickInterval)
	}

	prev := m.gameState.Phase
	result := m.game.Step(m.held.Frame(now))
	m.gameState = result.State

	if m.gameState.Phase != prev {
		m.logger.Debug("phase changed", "from", prev, "to", m.gameState.Phase)
		// The press that ended the loading screen must not carry into play
		if prev == core.PhaseLoading {
			m.held.Release()
		}
	}
	if m.gameState.GameOver() {
		m.gameOverAt = now
		m.held.Release()
		m.logger.Info("game over", "score", m.gameState.Score)
	}

	return m, tickCmd(m.config.TickInterval)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.termW > 0 && m.termH > 0 && (m.termW < m.screen.Width() || m.termH < m.screen.Height()+1) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			m.screen.Width(), m.screen.Height()+1, m.termW, m.termH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the session ends.
// It returns the final game state.
func Run(game Game, cfg core.RuntimeConfig, opts Options, progOpts ...tea.ProgramOption) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	progOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	p := tea.NewProgram(model, progOpts...)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: run program: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
