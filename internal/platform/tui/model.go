package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiletap/internal/core"
	"github.com/vovakirdan/tiletap/internal/registry"
	"github.com/vovakirdan/tiletap/internal/storage"
)

// Options configure a terminal run.
type Options struct {
	Logger *log.Logger    // Defaults to a discarding logger
	Store  *storage.Store // Receives finished rounds; defaults to a store owned by the model
}

// Model is the Bubble Tea model for running a game variant.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time

	store       *storage.Store
	ownsStore   bool
	summary     sessionSummary
	table       table.Model
	showResults bool
	quitting    bool
}

// NewModel resets the game for the terminal and creates the Bubble Tea model.
// Fails when the game refuses its configuration.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	cfg.Surface = core.SurfaceTerminal

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("reset %s: %w", game.ID(), err)
	}
	if src, ok := game.(interface{ ConfigSource() string }); ok {
		logger.Debug("config loaded", "source", src.ConfigSource())
	}
	store, owned := opts.Store, false
	if store == nil {
		var err error
		if store, err = storage.Open(); err != nil {
			return Model{}, err
		}
		owned = true
	}

	logger.Info("game ready", "variant", game.ID(), "seed", cfg.Seed, "tick_rate", cfg.TickRate)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		store:      store,
		ownsStore:  owned,
		table:      newResultsTable(cfg.ScreenW, cfg.ScreenH),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Results) {
		m.showResults = !m.showResults
		m.refreshResults()
		m.table.GotoTop()
		return m, nil
	}

	if m.showResults {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.showResults = false
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			if err := m.store.Clear(); err != nil {
				m.logger.Error("clear results", "err", err)
				return m, nil
			}
			m.logger.Info("results cleared")
			m.refreshResults()
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game lays itself out
// from the canvas bounds every frame, so no reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	m.table = newResultsTable(msg.Width, msg.Height)
	m.refreshResults()
	return m, nil
}

// refreshResults reloads the results screen from the store.
func (m *Model) refreshResults() {
	sum, err := loadSummary(m.store, bestRoundsShown)
	if err != nil {
		m.logger.Error("load results", "err", err)
		return
	}
	m.summary = sum
	m.table.SetRows(resultRows(sum.rounds))
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	// The results screen holds the game still.
	if m.showResults {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.RoundStarted {
		m.logger.Debug("round started", "variant", m.game.ID())
	}
	if result.RoundEnded {
		r, err := m.store.SaveRound(storage.ResultFor(m.game, result.State.Score, now))
		if err != nil {
			m.logger.Error("save round", "variant", r.Variant, "err", err)
		} else {
			m.logger.Info("round finished",
				"variant", r.Variant, "round", r.ID, "score", r.Score,
				"misses", r.Misses, "ended_by_miss", r.EndedByMiss)
		}
		m.refreshResults()
	}

	if result.State.Exit {
		if stats, err := m.store.Stats(""); err == nil {
			m.logger.Info("player left", "rounds", stats.Rounds, "best", stats.HighScore)
		}
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showResults {
		return renderResults(m.summary, m.table, m.config.ScreenW, m.help.View(m.keys))
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Results returns the results of the session so far.
func (m Model) Results() ([]storage.RoundResult, error) {
	return m.store.Rounds()
}

// Close releases the store when the model opened it itself.
func (m Model) Close() error {
	if m.ownsStore {
		return m.store.Close()
	}
	return nil
}

// GameState returns the state reported by the latest step.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the game. Finished rounds are
// recorded in opts.Store.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
