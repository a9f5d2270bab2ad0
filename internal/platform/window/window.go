package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tiletap/internal/core"
	"github.com/vovakirdan/tiletap/internal/registry"
	"github.com/vovakirdan/tiletap/internal/storage"
)

// Logical window size in pixels.
const (
	Width  = 1280
	Height = 720
)

// Options configure a window run.
type Options struct {
	Logger  *log.Logger    // Defaults to a discarding logger
	Store   *storage.Store // Receives finished rounds; defaults to a store owned by the app
	ShowFPS bool           // Draw the measured tick and frame rates
}

// App implements ebiten.Game for a game variant.
type App struct {
	game    registry.Game
	canvas  *Canvas
	config  core.RuntimeConfig
	logger  *log.Logger
	store   *storage.Store
	owned   bool
	input   core.InputFrame
	state   core.GameState
	dt      float64
	showFPS bool
}

// NewApp resets the game for the window and creates the app.
func NewApp(game registry.Game, cfg core.RuntimeConfig, opts Options) (*App, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	cfg.ScreenW, cfg.ScreenH = Width, Height
	cfg.Surface = core.SurfaceWindow

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := game.Reset(cfg); err != nil {
		return nil, fmt.Errorf("reset %s: %w", game.ID(), err)
	}
	if src, ok := game.(interface{ ConfigSource() string }); ok {
		logger.Debug("config loaded", "source", src.ConfigSource())
	}
	store, owned := opts.Store, false
	if store == nil {
		var err error
		if store, err = storage.Open(); err != nil {
			return nil, err
		}
		owned = true
	}

	logger.Info("game ready", "variant", game.ID(), "seed", cfg.Seed, "tick_rate", cfg.TickRate, "ui", cfg.Surface)

	return &App{
		game:    game,
		canvas:  NewCanvas(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		logger:  logger,
		store:   store,
		owned:   owned,
		input:   core.NewInputFrame(),
		state:   game.State(),
		dt:      1 / float64(cfg.TickRate),
		showFPS: opts.ShowFPS,
	}, nil
}

// Update polls the keyboard and advances the game one tick.
func (a *App) Update() error {
	a.input.Clear()
	if pollInput(&a.input) {
		a.logLeave()
		return ebiten.Termination
	}
	return a.step(a.input)
}

// step advances the game with in. Returns ebiten.Termination once the
// player leaves.
func (a *App) step(in core.InputFrame) error {
	result := a.game.Step(in, a.dt)
	a.state = result.State

	if result.RoundStarted {
		a.logger.Debug("round started", "variant", a.game.ID())
	}
	if result.RoundEnded {
		r, err := a.store.SaveRound(storage.ResultFor(a.game, result.State.Score, time.Now()))
		if err != nil {
			a.logger.Error("save round", "variant", r.Variant, "err", err)
		} else {
			a.logger.Info("round finished",
				"variant", r.Variant, "round", r.ID, "score", r.Score,
				"misses", r.Misses, "ended_by_miss", r.EndedByMiss)
		}
	}

	if result.State.Exit {
		a.logLeave()
		return ebiten.Termination
	}
	return nil
}

func (a *App) logLeave() {
	stats, err := a.store.Stats("")
	if err != nil {
		a.logger.Error("load results", "err", err)
		return
	}
	a.logger.Info("player left", "rounds", stats.Rounds, "best", stats.HighScore)
}

// Close releases the store when the app opened it itself.
func (a *App) Close() error {
	if a.owned {
		return a.store.Close()
	}
	return nil
}

// Draw renders the game onto screen.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.SetTarget(screen)
	a.game.Render(a.canvas)

	if a.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f  FPS: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, 4)
	}
}

// Layout keeps the logical size fixed; Ebitengine scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.config.ScreenW, a.config.ScreenH
}

// GameState returns the state reported by the latest step.
func (a *App) GameState() core.GameState {
	return a.state
}

// Run opens the window and blocks until the player leaves or the window is
// closed. Finished rounds are recorded in opts.Store.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	app, err := NewApp(game, cfg, opts)
	if err != nil {
		return err
	}
	defer app.Close()

	title := game.Title()
	if t, ok := game.(interface{ WindowTitle() string }); ok {
		title = t.WindowTitle()
	}
	ebiten.SetWindowSize(app.config.ScreenW, app.config.ScreenH)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(app.config.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
