package tiletap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classicConfig() RoundConfig {
	return RoundConfig{Rows: 3, Columns: 3, Hidden: 3, Duration: 10, Policy: EndOnTimer}
}

func newTestRound(t *testing.T, cfg RoundConfig, seed int64) *Round {
	t.Helper()
	r, err := NewRound(cfg, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return r
}

// firstTile returns the first tile in row-major order with the given visibility.
func firstTile(t *testing.T, r *Round, visible bool) Coord {
	t.Helper()
	cfg := r.Config()
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			v, err := r.IsVisible(At(row, col))
			require.NoError(t, err)
			if v == visible {
				return At(row, col)
			}
		}
	}
	t.Fatalf("no tile with visibility %v", visible)
	return Coord{}
}

func TestRoundConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*RoundConfig)
	}{
		{"zero rows", func(c *RoundConfig) { c.Rows = 0 }},
		{"zero hidden", func(c *RoundConfig) { c.Hidden = 0 }},
		{"all hidden", func(c *RoundConfig) { c.Hidden = 9 }},
		{"zero duration", func(c *RoundConfig) { c.Duration = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := classicConfig()
			tt.mod(&cfg)
			_, err := NewRound(cfg, rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestRoundLifecycle(t *testing.T) {
	r := newTestRound(t, classicConfig(), 1)
	assert.Equal(t, StateIdle, r.State())
	assert.Equal(t, 0, r.HiddenCount())
	_, err := r.IsVisible(At(0, 0))
	assert.ErrorIs(t, err, ErrOutOfRange, "no grid before Start")

	// Step while idle does nothing.
	require.NoError(t, r.Step(TapAt(At(0, 0)), 1))
	assert.Equal(t, StateIdle, r.State())

	require.NoError(t, r.Start())
	assert.Equal(t, StateRunning, r.State())
	assert.Equal(t, 3, r.HiddenCount())
	assert.InDelta(t, 10.0, r.Remaining(), 1e-9)

	for i := 0; i < 9; i++ {
		require.NoError(t, r.Step(NoTap(), 1))
		assert.Equal(t, StateRunning, r.State(), "second %d", i+1)
	}
	require.NoError(t, r.Step(NoTap(), 1))
	assert.Equal(t, StateOver, r.State())

	// Over ignores taps.
	require.NoError(t, r.Step(TapAt(At(0, 0)), 1))
	assert.Equal(t, StateOver, r.State())
	assert.Equal(t, 0, r.Score())

	r.Acknowledge()
	assert.Equal(t, StateIdle, r.State())
	assert.Equal(t, 0, r.HiddenCount())
	assert.Equal(t, 0.0, r.Remaining())
}

func TestRoundStartIsNoOpWhileRunning(t *testing.T) {
	r := newTestRound(t, classicConfig(), 2)
	require.NoError(t, r.Start())

	require.NoError(t, r.Step(TapAt(firstTile(t, r, true)), 2))
	hidden := r.Hidden()
	score := r.Score()

	require.NoError(t, r.Start())
	assert.Equal(t, StateRunning, r.State())
	assert.Equal(t, hidden, r.Hidden())
	assert.Equal(t, score, r.Score())
	assert.InDelta(t, 8.0, r.Remaining(), 1e-9)
}

func TestRoundAcknowledgeOnlyWhenOver(t *testing.T) {
	r := newTestRound(t, classicConfig(), 3)
	r.Acknowledge()
	assert.Equal(t, StateIdle, r.State())

	require.NoError(t, r.Start())
	r.Acknowledge()
	assert.Equal(t, StateRunning, r.State())
}

func TestRoundEndToEnd3x3(t *testing.T) {
	r := newTestRound(t, classicConfig(), 42)
	require.NoError(t, r.Start())

	c := firstTile(t, r, true)
	require.NoError(t, r.Step(TapAt(c), 1))

	assert.Equal(t, 1, r.Score())
	assert.Equal(t, 3, r.HiddenCount())
	assert.InDelta(t, 9.0, r.Remaining(), 1e-9)
	assert.False(t, r.MissedThisFrame())
	assert.Equal(t, StateRunning, r.State())

	v, err := r.IsVisible(c)
	require.NoError(t, err)
	assert.False(t, v, "tapped tile is hidden after the hit")
}

func TestRoundMissUnderTimerPolicy(t *testing.T) {
	r := newTestRound(t, classicConfig(), 4)
	require.NoError(t, r.Start())

	require.NoError(t, r.Step(TapAt(firstTile(t, r, false)), 0.5))
	assert.True(t, r.MissedThisFrame())
	assert.Equal(t, 0, r.Score())
	assert.Equal(t, 1, r.Misses())
	assert.Equal(t, StateRunning, r.State())

	require.NoError(t, r.Step(NoTap(), 0.5))
	assert.False(t, r.MissedThisFrame(), "missed flag lasts one step")
}

func TestRoundMissUnderMissPolicy(t *testing.T) {
	cfg := classicConfig()
	cfg.Policy = EndOnMiss
	r := newTestRound(t, cfg, 5)
	require.NoError(t, r.Start())

	require.NoError(t, r.Step(TapAt(firstTile(t, r, true)), 0.1))
	assert.Equal(t, StateRunning, r.State())

	require.NoError(t, r.Step(TapAt(firstTile(t, r, false)), 0.1))
	assert.Equal(t, StateOver, r.State())
	assert.True(t, r.EndedByMiss())
	assert.Equal(t, 1, r.Score(), "score survives the end of the round")
}

func TestRoundOutOfRangeTap(t *testing.T) {
	r := newTestRound(t, classicConfig(), 6)
	require.NoError(t, r.Start())
	before := r.Visibility()

	err := r.Step(TapAt(At(5, 5)), 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, before, r.Visibility())
	assert.InDelta(t, 10.0, r.Remaining(), 1e-9, "rejected step does not advance time")
}

func TestRoundPause(t *testing.T) {
	r := newTestRound(t, classicConfig(), 7)
	r.Pause()
	assert.False(t, r.Paused(), "idle round cannot pause")

	require.NoError(t, r.Start())
	r.Pause()
	assert.True(t, r.Paused())

	require.NoError(t, r.Step(TapAt(firstTile(t, r, true)), 5))
	assert.Equal(t, 0, r.Score(), "taps are ignored while paused")
	assert.InDelta(t, 10.0, r.Remaining(), 1e-9)

	r.Resume()
	require.NoError(t, r.Step(NoTap(), 5))
	assert.InDelta(t, 5.0, r.Remaining(), 1e-9)
}

func TestRoundScoreResetOnStart(t *testing.T) {
	cfg := classicConfig()
	cfg.Duration = 1
	r := newTestRound(t, cfg, 8)

	require.NoError(t, r.Start())
	require.NoError(t, r.Step(TapAt(firstTile(t, r, true)), 1))
	require.Equal(t, StateOver, r.State())
	assert.Equal(t, 1, r.Score())

	r.Acknowledge()
	assert.Equal(t, 1, r.Score(), "score readable until the next start")

	require.NoError(t, r.Start())
	assert.Equal(t, 0, r.Score())
}

func TestRoundDeterministic(t *testing.T) {
	play := func() []Coord {
		r := newTestRound(t, classicConfig(), 99)
		require.NoError(t, r.Start())
		for i := 0; i < 20; i++ {
			require.NoError(t, r.Step(TapAt(firstTile(t, r, true)), 0.1))
		}
		return r.Hidden()
	}
	assert.Equal(t, play(), play())
}

func TestStateAndPolicyNames(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "over", StateOver.String())
	assert.Equal(t, "timer", EndOnTimer.String())
	assert.Equal(t, "miss", EndOnMiss.String())
}
