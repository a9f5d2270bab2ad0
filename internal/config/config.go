// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for Tile Tap.
package config

// TileTapConfig contains all configuration for the Tile Tap game.
type TileTapConfig struct {
	Round    RoundSettings `yaml:"round"`
	Menu     MenuSettings  `yaml:"menu"`
	Terminal Layout        `yaml:"terminal"`
	Window   Layout        `yaml:"window"`
}

// RoundSettings defines the grid and timing of a single round.
type RoundSettings struct {
	Rows      int     `yaml:"rows"`
	Columns   int     `yaml:"columns"`
	Hidden    int     `yaml:"hidden"`     // Tiles hidden at any moment, 0 < hidden < rows*columns
	Duration  float64 `yaml:"duration"`   // Round length in seconds
	EndPolicy string  `yaml:"end_policy"` // "timer" or "miss"
	Input     string  `yaml:"input"`      // "keypad" (3x3 only) or "cursor"
}

// MenuSettings defines the pre-round menu.
type MenuSettings struct {
	Title         string `yaml:"title"`
	EmphasisDelta int    `yaml:"emphasis_delta"` // Font size boost of the selected option
}

// Layout defines rendering attributes for one frontend.
// Sizes are in the frontend's layout units (cells or pixels).
type Layout struct {
	TileWidth     int    `yaml:"tile_width"`
	TileHeight    int    `yaml:"tile_height"`
	Spacing       int    `yaml:"spacing"`
	FontSize      int    `yaml:"font_size"`
	TitleFontSize int    `yaml:"title_font_size"`
	TileColor     string `yaml:"tile_color"`
	HiddenColor   string `yaml:"hidden_color"` // Empty means hidden tiles are not drawn
	CursorColor   string `yaml:"cursor_color"`
	TextColor     string `yaml:"text_color"`
	TitleColor    string `yaml:"title_color"`
	SelectColor   string `yaml:"select_color"`
}

// End policies.
const (
	EndPolicyTimer = "timer"
	EndPolicyMiss  = "miss"
)

// Input schemes.
const (
	InputKeypad = "keypad"
	InputCursor = "cursor"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI value to a preset.
// An empty string means "use the config as loaded".
func ParseDifficultyPreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return "", true
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
