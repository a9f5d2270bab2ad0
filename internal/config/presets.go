package config

import "math"

// minPresetDuration is the shortest round a preset produces, in seconds.
const minPresetDuration = 0.1

// ApplyPreset modifies the round settings for a difficulty preset.
// Presets are static: they change the starting parameters, nothing
// scales during a round.
//
//	easy   - 1.5x duration, one tile fewer hidden
//	normal - config as loaded
//	hard   - 0.7x duration, two more tiles hidden
//
// The hidden count is kept inside (0, rows*columns). A positive duration
// never scales below minPresetDuration.
func ApplyPreset(cfg *TileTapConfig, preset DifficultyPreset) {
	r := &cfg.Round
	total := r.Rows * r.Columns

	switch preset {
	case DifficultyEasy:
		r.Duration = scaleDuration(r.Duration, 1.5)
		r.Hidden--
	case DifficultyHard:
		r.Duration = scaleDuration(r.Duration, 0.7)
		r.Hidden += 2
	default:
		return
	}

	if r.Hidden < 1 {
		r.Hidden = 1
	}
	if total > 1 && r.Hidden > total-1 {
		r.Hidden = total - 1
	}
}

// scaleDuration scales d and rounds to a tenth of a second. Durations that
// are already invalid are left for Validate to reject.
func scaleDuration(d, factor float64) float64 {
	if d <= 0 {
		return d
	}
	return math.Max(math.Round(d*factor*10)/10, minPresetDuration)
}
