package window

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tiletap/internal/config"
	"github.com/vovakirdan/tiletap/internal/core"
	"github.com/vovakirdan/tiletap/internal/games/tiletap"
	"github.com/vovakirdan/tiletap/internal/storage"
)

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorPurple; c++ {
		_, ok := palette[c]
		assert.True(t, ok, "color %d has no palette entry", c)
	}
	assert.Equal(t, palette[core.ColorDefault], RGBA(core.Color(200)))
	assert.Equal(t, uint8(0xff), RGBA(core.ColorBlue).B)
}

func TestBackgroundIsLight(t *testing.T) {
	assert.Equal(t, color.RGBA{0xf5, 0xf5, 0xf5, 0xff}, Background)
	// Default text stays readable on the light background.
	assert.Less(t, RGBA(core.ColorDefault).R, uint8(0x80))
}

func TestCanvasMeasureText(t *testing.T) {
	c := NewCanvas(Width, Height)

	w, h := c.Bounds()
	assert.Equal(t, Width, w)
	assert.Equal(t, Height, h)

	tests := []struct {
		text string
		size int
		want int
	}{
		{"", 13, 0},
		{"abc", 13, 21},
		{"abc", 26, 42},
		{"abc", 0, 21},
		{"Play", 39, 84},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.MeasureText(tt.text, tt.size), "%q at %d", tt.text, tt.size)
	}
}

func TestCanvasWithoutTarget(t *testing.T) {
	c := NewCanvas(100, 50)
	c.Clear()
	c.FillRect(core.NewRect(0, 0, 10, 10), core.ColorRed)
	c.DrawLabel(0, 0, "x", 13, core.ColorRed)

	x, _ := core.TextCenter(c, "abc", 13)
	assert.Equal(t, (100-21)/2, x)
}

func TestBindings(t *testing.T) {
	seen := make(map[ebiten.Key]core.Action)
	actions := make(map[core.Action]bool)
	for _, b := range bindings {
		require.NotEmpty(t, b.keys)
		actions[b.action] = true
		for _, k := range b.keys {
			prev, dup := seen[k]
			assert.False(t, dup, "key %v bound to %v and %v", k, prev, b.action)
			seen[k] = b.action
		}
	}
	for n := 1; n <= 9; n++ {
		a, ok := core.KeyAction(n)
		require.True(t, ok)
		assert.True(t, actions[a], "digit %d unbound", n)
	}
	for _, k := range quitKeys {
		_, dup := seen[k]
		assert.False(t, dup, "quit key %v also bound to an action", k)
	}
}

func newTestApp(t *testing.T, store *storage.Store) *App {
	t.Helper()
	app, err := NewApp(tiletap.NewWithConfig(config.DefaultTileTapConfig(), false),
		core.RuntimeConfig{TickRate: 10, Seed: 7}, Options{Store: store})
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestAppUsesWindowLayout(t *testing.T) {
	app := newTestApp(t, nil)

	w, h := app.Layout(640, 480)
	assert.Equal(t, Width, w)
	assert.Equal(t, Height, h)
	assert.InDelta(t, 0.1, app.dt, 1e-9)
	assert.Equal(t, core.SurfaceWindow, app.config.Surface)
}

func TestAppRecordsRounds(t *testing.T) {
	store, err := storage.Open()
	require.NoError(t, err)
	defer store.Close()
	app := newTestApp(t, store)

	require.NoError(t, app.step(frame(core.ActionConfirm)))
	assert.True(t, app.GameState().Playing)

	// 10 seconds at 10 ticks per second.
	for i := 0; i < 110 && !app.GameState().GameOver; i++ {
		require.NoError(t, app.step(frame()))
	}
	require.True(t, app.GameState().GameOver)

	rounds, err := store.Rounds()
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, tiletap.VariantClassic, rounds[0].Variant)
	assert.Equal(t, 0, rounds[0].Score)
	assert.False(t, rounds[0].EndedByMiss)
}

func TestAppExitTerminates(t *testing.T) {
	app := newTestApp(t, nil)

	err := app.step(frame(core.ActionBack))
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.True(t, app.GameState().Exit)
}

func TestAppRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultTileTapConfig()
	cfg.Round.Duration = 0
	_, err := NewApp(tiletap.NewWithConfig(cfg, false), core.RuntimeConfig{}, Options{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
