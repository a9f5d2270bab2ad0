package config

import (
	_ "embed"
)

//go:embed defaults/tiletap.yaml
var defaultTileTapYAML []byte

// DefaultTileTapConfig returns the built-in Tile Tap configuration.
// It matches defaults/tiletap.yaml and is used when the embedded file cannot be parsed.
func DefaultTileTapConfig() TileTapConfig {
	return TileTapConfig{
		Round: RoundSettings{
			Rows:      3,
			Columns:   3,
			Hidden:    3,
			Duration:  10,
			EndPolicy: EndPolicyTimer,
			Input:     InputKeypad,
		},
		Menu: MenuSettings{
			Title:         "Tile Tapping 2",
			EmphasisDelta: 10,
		},
		Terminal: Layout{
			TileWidth:     9,
			TileHeight:    4,
			Spacing:       2,
			FontSize:      1,
			TitleFontSize: 1,
			TileColor:     "bright_blue",
			HiddenColor:   "gray",
			CursorColor:   "yellow",
			TextColor:     "white",
			TitleColor:    "magenta",
			SelectColor:   "bright_yellow",
		},
		Window: Layout{
			TileWidth:     150,
			TileHeight:    150,
			Spacing:       20,
			FontSize:      30,
			TitleFontSize: 50,
			TileColor:     "blue",
			HiddenColor:   "",
			CursorColor:   "orange",
			TextColor:     "gray",
			TitleColor:    "purple",
			SelectColor:   "red",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTileTapYAML
}
