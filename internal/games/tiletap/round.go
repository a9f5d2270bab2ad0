package tiletap

import (
	"fmt"
	"math/rand"
)

// RoundState is the lifecycle position of a Round.
type RoundState int

const (
	StateIdle RoundState = iota
	StateRunning
	StateOver
)

// String returns the state name.
func (s RoundState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// EndPolicy decides what ends a running round besides the countdown.
type EndPolicy int

const (
	EndOnTimer EndPolicy = iota // Only the countdown ends the round
	EndOnMiss                   // The countdown or any miss ends the round
)

// String returns the policy name as used in config files.
func (p EndPolicy) String() string {
	if p == EndOnMiss {
		return "miss"
	}
	return "timer"
}

// RoundConfig holds the parameters every round is built from.
type RoundConfig struct {
	Rows     int
	Columns  int
	Hidden   int     // Hidden tiles, 0 < Hidden < Rows*Columns
	Duration float64 // Seconds
	Policy   EndPolicy
}

// Validate returns an ErrInvalidArgument error for unusable parameters.
func (c RoundConfig) Validate() error {
	if c.Rows < 1 || c.Columns < 1 {
		return fmt.Errorf("tiletap: round grid %dx%d: %w", c.Rows, c.Columns, ErrInvalidArgument)
	}
	if c.Hidden <= 0 || c.Hidden >= c.Rows*c.Columns {
		return fmt.Errorf("tiletap: %d hidden tiles on a %dx%d grid: %w", c.Hidden, c.Rows, c.Columns, ErrInvalidArgument)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("tiletap: round duration %g: %w", c.Duration, ErrInvalidArgument)
	}
	return nil
}

// TapCommand is the optional tap fed to a round step.
// The zero value means no tap.
type TapCommand struct {
	coord Coord
	set   bool
}

// NoTap returns a command without a tap.
func NoTap() TapCommand {
	return TapCommand{}
}

// TapAt returns a command tapping c.
func TapAt(c Coord) TapCommand {
	return TapCommand{coord: c, set: true}
}

// Coord returns the tapped coordinate, if any.
func (t TapCommand) Coord() (Coord, bool) {
	return t.coord, t.set
}

// Round runs one playthrough at a time:
//
//	Idle --Start--> Running --(countdown done | miss policy)--> Over --Acknowledge--> Idle
//
// The grid and countdown exist only while Running or Over. The score of the
// last round stays readable until the next Start.
type Round struct {
	cfg     RoundConfig
	rng     *rand.Rand
	sampler *Sampler

	state     RoundState
	score     int
	missed    bool // Set by the latest Step when its tap missed
	missEnded bool // The round ended on a miss rather than the countdown
	misses    int

	grid  *TileGrid
	timer *Countdown
}

// NewRound creates an idle round. rng drives both the initial hidden tiles
// and the reveal choice on every hit.
func NewRound(cfg RoundConfig, rng *rand.Rand) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Round{
		cfg:     cfg,
		rng:     rng,
		sampler: NewSampler(rng),
		state:   StateIdle,
	}, nil
}

// Start begins a new round. It is a no-op unless the round is Idle.
func (r *Round) Start() error {
	if r.state != StateIdle {
		return nil
	}

	total := r.cfg.Rows * r.cfg.Columns
	picks, err := r.sampler.Sample(total, r.cfg.Hidden)
	if err != nil {
		return err
	}

	hidden := make([]Coord, len(picks))
	for i, p := range picks {
		if hidden[i], err = ToCoordinate(p, r.cfg.Columns); err != nil {
			return err
		}
	}

	grid, err := NewTileGrid(r.cfg.Rows, r.cfg.Columns, hidden, r.rng)
	if err != nil {
		return err
	}

	r.grid = grid
	r.timer = &Countdown{}
	r.timer.Set(r.cfg.Duration)
	r.score = 0
	r.misses = 0
	r.missed = false
	r.missEnded = false
	r.state = StateRunning
	return nil
}

// Step advances a running round by dt seconds after applying the tap in cmd.
// Outside Running it does nothing. A tap outside the grid returns
// ErrOutOfRange and leaves the round untouched.
func (r *Round) Step(cmd TapCommand, dt float64) error {
	r.missed = false
	if r.state != StateRunning {
		return nil
	}
	if r.timer.Frozen() {
		return nil
	}

	if c, ok := cmd.Coord(); ok {
		res, err := r.grid.Tap(c)
		if err != nil {
			return err
		}
		if res == Hit {
			r.score++
		} else {
			r.missed = true
			r.misses++
		}
	}

	r.timer.Advance(dt)

	if r.missed && r.cfg.Policy == EndOnMiss {
		r.missEnded = true
		r.state = StateOver
	} else if r.timer.IsDone() {
		r.state = StateOver
	}
	return nil
}

// Acknowledge returns an Over round to Idle and drops its grid and countdown.
func (r *Round) Acknowledge() {
	if r.state != StateOver {
		return
	}
	r.grid = nil
	r.timer = nil
	r.missed = false
	r.state = StateIdle
}

// Pause freezes the countdown of a running round. Taps are ignored while paused.
func (r *Round) Pause() {
	if r.state == StateRunning {
		r.timer.Freeze()
	}
}

// Resume unfreezes a paused round.
func (r *Round) Resume() {
	if r.state == StateRunning {
		r.timer.Resume()
	}
}

// Paused reports whether a running round is paused.
func (r *Round) Paused() bool {
	return r.state == StateRunning && r.timer.Frozen()
}

// State returns the lifecycle state.
func (r *Round) State() RoundState {
	return r.state
}

// Score returns the tiles tapped in the current or last round.
func (r *Round) Score() int {
	return r.score
}

// Misses returns the misses of the current or last round.
func (r *Round) Misses() int {
	return r.misses
}

// MissedThisFrame reports whether the latest Step's tap was a miss.
func (r *Round) MissedThisFrame() bool {
	return r.missed
}

// EndedByMiss reports whether the current or last round ended on a miss.
func (r *Round) EndedByMiss() bool {
	return r.missEnded
}

// Remaining returns the seconds left, or 0 when no round is active.
func (r *Round) Remaining() float64 {
	if r.timer == nil {
		return 0
	}
	return r.timer.Remaining()
}

// Config returns the parameters rounds are built from.
func (r *Round) Config() RoundConfig {
	return r.cfg
}

// IsVisible reports tile visibility of the active round.
// Without an active round every coordinate is out of range.
func (r *Round) IsVisible(c Coord) (bool, error) {
	if r.grid == nil {
		return false, fmt.Errorf("tiletap: tile %v without active round: %w", c, ErrOutOfRange)
	}
	return r.grid.IsVisible(c)
}

// HiddenCount returns the hidden tiles of the active round, or 0.
func (r *Round) HiddenCount() int {
	if r.grid == nil {
		return 0
	}
	return r.grid.HiddenCount()
}

// Hidden returns a copy of the hidden coordinates of the active round, or nil.
func (r *Round) Hidden() []Coord {
	if r.grid == nil {
		return nil
	}
	return r.grid.Hidden()
}

// Visibility returns a copy of the visibility matrix of the active round, or nil.
func (r *Round) Visibility() [][]bool {
	if r.grid == nil {
		return nil
	}
	return r.grid.Visibility()
}
