package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tiletap/internal/core"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config sources reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads Tile Tap configuration and validates it.
// Search order: customPath -> ~/.tiletap/configs/tiletap.yaml -> ./configs/tiletap.yaml -> embedded default.
// Files are decoded on top of the built-in defaults, so partial files are allowed.
// The second return value names the source that was used.
func Load(customPath string) (TileTapConfig, string, error) {
	cfg, source, err := load(customPath)
	if err != nil {
		return cfg, source, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, source, nil
}

func load(customPath string) (TileTapConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTileTapConfig(), customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return cfg, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tiletap.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "tiletap.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultTileTapYAML)
	if err != nil {
		return DefaultTileTapConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// decode parses YAML on top of the built-in defaults.
func decode(data []byte) (TileTapConfig, error) {
	cfg := DefaultTileTapConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTileTapConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tiletap", "configs", filename)
}

// Validate checks the configuration and returns an error wrapping
// ErrInvalidConfig describing the first problem found.
func (c TileTapConfig) Validate() error {
	r := c.Round
	if r.Rows < 1 || r.Columns < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, r.Rows, r.Columns)
	}
	total := r.Rows * r.Columns
	if r.Hidden <= 0 || r.Hidden >= total {
		return fmt.Errorf("%w: hidden must be in (0, %d), got %d", ErrInvalidConfig, total, r.Hidden)
	}
	if r.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidConfig, r.Duration)
	}
	switch r.EndPolicy {
	case EndPolicyTimer, EndPolicyMiss:
	default:
		return fmt.Errorf("%w: unknown end_policy %q", ErrInvalidConfig, r.EndPolicy)
	}
	switch r.Input {
	case InputCursor:
	case InputKeypad:
		if r.Rows != 3 || r.Columns != 3 {
			return fmt.Errorf("%w: keypad input needs a 3x3 grid, got %dx%d", ErrInvalidConfig, r.Rows, r.Columns)
		}
	default:
		return fmt.Errorf("%w: unknown input %q", ErrInvalidConfig, r.Input)
	}

	if err := c.Terminal.validate("terminal"); err != nil {
		return err
	}
	return c.Window.validate("window")
}

func (l Layout) validate(name string) error {
	if l.TileWidth <= 0 || l.TileHeight <= 0 {
		return fmt.Errorf("%w: %s tile size must be positive", ErrInvalidConfig, name)
	}
	if l.Spacing < 0 {
		return fmt.Errorf("%w: %s spacing must not be negative", ErrInvalidConfig, name)
	}
	if l.FontSize <= 0 || l.TitleFontSize <= 0 {
		return fmt.Errorf("%w: %s font sizes must be positive", ErrInvalidConfig, name)
	}

	colors := map[string]string{
		"tile_color":   l.TileColor,
		"cursor_color": l.CursorColor,
		"text_color":   l.TextColor,
		"title_color":  l.TitleColor,
		"select_color": l.SelectColor,
	}
	if l.HiddenColor != "" {
		colors["hidden_color"] = l.HiddenColor
	}
	for field, value := range colors {
		if _, ok := core.ParseColor(value); !ok {
			return fmt.Errorf("%w: %s.%s: unknown color %q", ErrInvalidConfig, name, field, value)
		}
	}
	return nil
}
