package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := decode(GetDefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultTileTapConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiletap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := writeConfig(t, `
round:
  duration: 20
  end_policy: miss
`)

	cfg, source, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 20.0, cfg.Round.Duration)
	assert.Equal(t, EndPolicyMiss, cfg.Round.EndPolicy)
	// Untouched fields keep their defaults
	assert.Equal(t, 3, cfg.Round.Rows)
	assert.Equal(t, "Tile Tapping 2", cfg.Menu.Title)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := writeConfig(t, "round: [not, a, map")
	_, _, err = Load(bad)
	assert.Error(t, err)

	invalid := writeConfig(t, "round:\n  hidden: 9\n")
	_, _, err = Load(invalid)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *TileTapConfig)
		ok     bool
	}{
		{"defaults", func(c *TileTapConfig) {}, true},
		{"zero rows", func(c *TileTapConfig) { c.Round.Rows = 0 }, false},
		{"no hidden tiles", func(c *TileTapConfig) { c.Round.Hidden = 0 }, false},
		{"all tiles hidden", func(c *TileTapConfig) { c.Round.Hidden = 9 }, false},
		{"zero duration", func(c *TileTapConfig) { c.Round.Duration = 0 }, false},
		{"unknown policy", func(c *TileTapConfig) { c.Round.EndPolicy = "lives" }, false},
		{"unknown input", func(c *TileTapConfig) { c.Round.Input = "mouse" }, false},
		{"keypad on 4x4", func(c *TileTapConfig) {
			c.Round.Rows, c.Round.Columns = 4, 4
		}, false},
		{"cursor on 4x4", func(c *TileTapConfig) {
			c.Round.Rows, c.Round.Columns, c.Round.Input = 4, 4, InputCursor
		}, true},
		{"bad color", func(c *TileTapConfig) { c.Window.TileColor = "chartreuse" }, false},
		{"empty hidden color allowed", func(c *TileTapConfig) { c.Terminal.HiddenColor = "" }, true},
		{"negative spacing", func(c *TileTapConfig) { c.Terminal.Spacing = -1 }, false},
		{"zero font", func(c *TileTapConfig) { c.Window.FontSize = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTileTapConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		duration float64
		hidden   int
	}{
		{DifficultyEasy, 15, 2},
		{DifficultyNormal, 10, 3},
		{DifficultyHard, 7, 5},
		{"", 10, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTileTapConfig()
			ApplyPreset(&cfg, tc.preset)
			assert.Equal(t, tc.duration, cfg.Round.Duration)
			assert.Equal(t, tc.hidden, cfg.Round.Hidden)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestApplyPresetKeepsHiddenInRange(t *testing.T) {
	cfg := DefaultTileTapConfig()
	cfg.Round.Rows, cfg.Round.Columns, cfg.Round.Hidden = 1, 2, 1

	ApplyPreset(&cfg, DifficultyEasy)
	assert.Equal(t, 1, cfg.Round.Hidden)

	ApplyPreset(&cfg, DifficultyHard)
	assert.Equal(t, 1, cfg.Round.Hidden)
}

func TestApplyPresetKeepsShortDurationsPositive(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyHard} {
		t.Run(string(preset), func(t *testing.T) {
			cfg := DefaultTileTapConfig()
			cfg.Round.Duration = 0.05
			ApplyPreset(&cfg, preset)
			assert.GreaterOrEqual(t, cfg.Round.Duration, minPresetDuration)
			assert.NoError(t, cfg.Validate())
		})
	}

	cfg := DefaultTileTapConfig()
	cfg.Round.Duration = 0
	ApplyPreset(&cfg, DifficultyHard)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, "invalid duration must stay invalid")
}

func TestParseDifficultyPreset(t *testing.T) {
	p, ok := ParseDifficultyPreset("hard")
	assert.True(t, ok)
	assert.Equal(t, DifficultyHard, p)

	_, ok = ParseDifficultyPreset("fixed")
	assert.False(t, ok)

	p, ok = ParseDifficultyPreset("")
	assert.True(t, ok)
	assert.Equal(t, DifficultyPreset(""), p)
}
