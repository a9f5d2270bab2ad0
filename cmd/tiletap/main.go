// tiletap is a reflex game: tap the visible tiles of a grid before the
// countdown runs out. It plays in the terminal or in a desktop window.
//
// Usage:
//
//	tiletap list              - List available variants
//	tiletap play [variant]    - Play a variant (default: tiletap)
//	tiletap config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible rounds
//	--log <path>     - Write logs to a file (default: discarded)
//	--verbose        - Log debug messages
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tiletap/internal/games/tiletap"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiletap",
	Short: "Tile Tap - tap the visible tiles before time runs out",
	Long: `Tile Tap shows a grid of tiles with a few of them hidden. Tapping a
visible tile scores a point and moves it into the hidden set, hiding
another tile in its place. Score as many taps as you can before the
countdown ends.

Available commands:
  list     - Show all variants
  play     - Play a variant
  config   - Print the default configuration

Examples:
  tiletap list
  tiletap play
  tiletap play tiletap_sudden --difficulty hard
  tiletap play --ui window
  tiletap config > ~/.tiletap/configs/tiletap.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the program logger. The terminal frontend owns the
// screen, so logs go to the --log file or nowhere.
func newLogger() (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}

	var w io.Writer = io.Discard
	closeLog := func() error { return nil }
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeLog = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiletap",
		Level:           level,
	})
	return logger, closeLog, nil
}
