package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tiletap/internal/config"
	"github.com/vovakirdan/tiletap/internal/core"
	"github.com/vovakirdan/tiletap/internal/games/tiletap"
	"github.com/vovakirdan/tiletap/internal/platform/tui"
	"github.com/vovakirdan/tiletap/internal/platform/window"
	"github.com/vovakirdan/tiletap/internal/registry"
	"github.com/vovakirdan/tiletap/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagUI         string
	flagShowFPS    bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start the game menu for the given variant (default: tiletap).

Controls:
  Up/Down      - Select menu option
  Enter        - Confirm
  1-9          - Tap a tile (keypad layout, 7 8 9 on the top row)
  Arrows/Space - Move and tap (cursor input)
  P            - Pause
  Tab          - Session results (terminal)
  Q            - Quit

Variants:
  tiletap        - The round ends when the countdown reaches zero
  tiletap_sudden - A miss also ends the round

Difficulty options:
  easy   - Longer rounds, fewer hidden tiles
  normal - The configured round
  hard   - Shorter rounds, more hidden tiles

Examples:
  tiletap play
  tiletap play tiletap_sudden
  tiletap play --difficulty hard
  tiletap play --ui window --show-fps
  tiletap play --config ./my-tiletap.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagUI, "ui", "terminal", "Frontend: terminal or window")
	playCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show tick and frame rates (window only)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant := tiletap.VariantClassic
	if len(args) == 1 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q, run 'tiletap list' to see available variants", variant)
	}
	if flagDifficulty != "" {
		if _, ok := config.ParseDifficultyPreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	tiletap.SetConfigPath(flagConfig)
	tiletap.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	switch flagUI {
	case "terminal":
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cfg.ScreenW, cfg.ScreenH = w, h
		}
		err = tui.Run(game, cfg, tui.Options{Logger: logger, Store: store})
	case "window":
		err = window.Run(game, cfg, window.Options{Logger: logger, Store: store, ShowFPS: flagShowFPS})
	default:
		return fmt.Errorf("unknown ui %q, want terminal or window", flagUI)
	}
	if err != nil {
		logger.Error("game stopped", "err", err)
		return err
	}

	summary, err := tui.SummaryTable(store)
	if err != nil {
		logger.Error("session summary", "err", err)
		return err
	}
	if summary != "" {
		fmt.Println(summary)
	}
	return nil
}
