package tiletap

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tiletap/internal/config"
	"github.com/vovakirdan/tiletap/internal/core"
	"github.com/vovakirdan/tiletap/internal/registry"
)

// Variant IDs.
const (
	VariantClassic = "tiletap"
	VariantSudden  = "tiletap_sudden"
)

// missFlashSeconds is how long the playfield shows miss feedback.
const missFlashSeconds = 0.25

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for subsequent games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequent games.
// Unknown names fall back to the config as loaded.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParseDifficultyPreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// Game is the registry-facing Tile Tap adapter. It owns the menu and the
// round engine, maps input frames to menu moves and taps, and renders every
// screen onto a core.Canvas.
type Game struct {
	sudden   bool
	override *config.TileTapConfig

	cfg     config.TileTapConfig
	source  string
	surface core.Surface
	rng     *rand.Rand
	tick    uint64

	menu  *MenuSelector
	round *Round

	cursor Coord
	flash  float64 // Seconds of miss feedback left
	missed bool    // Some tap of the latest frame missed
	exit   bool

	// Session results, kept for the lifetime of the game instance.
	rounds    int
	best      int
	lastScore int
}

// New creates the classic variant: only the countdown ends a round.
func New() *Game {
	return &Game{}
}

// NewSudden creates the sudden-death variant: a miss also ends the round.
func NewSudden() *Game {
	return &Game{sudden: true}
}

// NewWithConfig creates a game that skips config file loading and uses cfg.
func NewWithConfig(cfg config.TileTapConfig, sudden bool) *Game {
	return &Game{sudden: sudden, override: &cfg}
}

func init() {
	registry.Register(VariantClassic, func() registry.Game {
		return New()
	})
	registry.Register(VariantSudden, func() registry.Game {
		return NewSudden()
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	if g.sudden {
		return VariantSudden
	}
	return VariantClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.sudden {
		return "Tile Tap (Sudden Death)"
	}
	return "Tile Tap"
}

// Reset loads configuration and builds an idle round behind the menu.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	cfg, source, err := g.loadConfig()
	if err != nil {
		return err
	}

	roundCfg, err := RoundConfigFrom(cfg.Round)
	if err != nil {
		return err
	}
	if g.sudden {
		roundCfg.Policy = EndOnMiss
	}

	seed := rc.Seed
	if seed == 0 {
		seed = 1
	}
	g.rng = rand.New(rand.NewSource(seed))

	round, err := NewRound(roundCfg, g.rng)
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.source = source
	g.surface = rc.Surface
	g.round = round
	g.menu = DefaultMenu(g.layout().FontSize, cfg.Menu.EmphasisDelta)
	g.tick = 0
	g.cursor = Coord{}
	g.flash = 0
	g.exit = false
	g.rounds = 0
	g.best = 0
	g.lastScore = 0
	return nil
}

func (g *Game) loadConfig() (config.TileTapConfig, string, error) {
	if g.override != nil {
		cfg := *g.override
		if err := cfg.Validate(); err != nil {
			return cfg, "", err
		}
		return cfg, "override", nil
	}

	cfg, source, err := config.Load(configPath)
	if err != nil {
		return cfg, source, err
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg, source, nil
}

// RoundConfigFrom converts the YAML round settings into engine parameters.
func RoundConfigFrom(s config.RoundSettings) (RoundConfig, error) {
	rc := RoundConfig{
		Rows:     s.Rows,
		Columns:  s.Columns,
		Hidden:   s.Hidden,
		Duration: s.Duration,
	}
	switch s.EndPolicy {
	case config.EndPolicyTimer, "":
		rc.Policy = EndOnTimer
	case config.EndPolicyMiss:
		rc.Policy = EndOnMiss
	default:
		return rc, fmt.Errorf("tiletap: end policy %q: %w", s.EndPolicy, ErrInvalidArgument)
	}
	return rc, rc.Validate()
}

// ConfigSource names where the active configuration was loaded from.
func (g *Game) ConfigSource() string {
	return g.source
}

// Config returns the active configuration.
func (g *Game) Config() config.TileTapConfig {
	return g.cfg
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	var result core.StepResult
	if g.round == nil || g.exit {
		result.State = g.State()
		return result
	}

	g.tick++
	g.missed = false
	if g.flash > 0 {
		g.flash -= dt
	}

	switch g.round.State() {
	case StateIdle:
		result.RoundStarted = g.stepMenu(in)
	case StateRunning:
		result.RoundEnded = g.stepRound(in, dt)
	case StateOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionTap) || in.Has(core.ActionBack) {
			g.round.Acknowledge()
		}
	}

	result.State = g.State()
	return result
}

// stepMenu handles navigation and activation. Returns true when a round started.
func (g *Game) stepMenu(in core.InputFrame) bool {
	if in.Has(core.ActionUp) {
		g.menu.Previous()
	}
	if in.Has(core.ActionDown) {
		g.menu.Next()
	}
	if in.Has(core.ActionBack) {
		g.exit = true
		return false
	}
	if !in.Has(core.ActionConfirm) && !in.Has(core.ActionTap) {
		return false
	}

	switch g.menu.Activate() {
	case OptionPlay:
		if err := g.round.Start(); err != nil {
			g.exit = true
			return false
		}
		g.cursor = Coord{}
		g.flash = 0
		return true
	case OptionExit:
		g.exit = true
	}
	return false
}

// stepRound applies pause, taps and time. Returns true when the round ended.
func (g *Game) stepRound(in core.InputFrame, dt float64) bool {
	if in.Has(core.ActionPause) {
		if g.round.Paused() {
			g.round.Resume()
		} else {
			g.round.Pause()
		}
	}
	if g.round.Paused() {
		return false
	}

	// The frame's time goes with the first tap the round accepts.
	pending := dt
	taps := g.collectTaps(in)
	for _, c := range taps {
		if err := g.round.Step(TapAt(c), pending); err != nil {
			continue
		}
		pending = 0
		if g.round.MissedThisFrame() {
			g.missed = true
		}
	}
	if len(taps) == 0 || pending > 0 {
		if err := g.round.Step(NoTap(), pending); err != nil {
			return false
		}
	}
	if g.missed {
		g.flash = missFlashSeconds
	}

	if g.round.State() != StateOver {
		return false
	}
	g.rounds++
	g.lastScore = g.round.Score()
	if g.lastScore > g.best {
		g.best = g.lastScore
	}
	return true
}

// collectTaps maps this frame's input to tile coordinates in the order the
// configured input scheme defines.
func (g *Game) collectTaps(in core.InputFrame) []Coord {
	rc := g.round.Config()

	if g.cfg.Round.Input == config.InputKeypad {
		var taps []Coord
		for _, n := range in.Keys() {
			if c, ok := KeypadCoord(n); ok {
				taps = append(taps, c)
			}
		}
		return taps
	}

	if in.Has(core.ActionUp) {
		g.cursor.Row--
	}
	if in.Has(core.ActionDown) {
		g.cursor.Row++
	}
	if in.Has(core.ActionLeft) {
		g.cursor.Col--
	}
	if in.Has(core.ActionRight) {
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, rc.Rows-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, rc.Columns-1)

	if in.Has(core.ActionTap) || in.Has(core.ActionConfirm) {
		return []Coord{g.cursor}
	}
	return nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{Exit: g.exit}
	}
	return core.GameState{
		Score:    g.round.Score(),
		Playing:  g.round.State() == StateRunning,
		GameOver: g.round.State() == StateOver,
		Paused:   g.round.Paused(),
		Exit:     g.exit,
	}
}

// Session returns the number of finished rounds, the best and the last score.
func (g *Game) Session() (rounds, best, last int) {
	return g.rounds, g.best, g.lastScore
}

// Menu returns the pre-round menu.
func (g *Game) Menu() *MenuSelector {
	return g.menu
}

// Round returns the round engine.
func (g *Game) Round() *Round {
	return g.round
}

// Cursor returns the cursor position used by the cursor input scheme.
func (g *Game) Cursor() Coord {
	return g.cursor
}

// RoundMisses reports the misses of the current or last round and whether
// a miss ended it.
func (g *Game) RoundMisses() (misses int, endedByMiss bool) {
	if g.round == nil {
		return 0, false
	}
	return g.round.Misses(), g.round.EndedByMiss()
}

// WindowTitle returns the configured title for window frontends.
func (g *Game) WindowTitle() string {
	if g.cfg.Menu.Title == "" {
		return g.Title()
	}
	return g.cfg.Menu.Title
}
