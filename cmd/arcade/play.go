package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kids-arcade/internal/haptics"
	"github.com/vovakirdan/kids-arcade/internal/platform/tui"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

var (
	flagConfig  string
	flagHaptics string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move or steer
  Space        - Tap (jump, pick, flip)
  Enter        - Start the round
  R            - Play again (after the round ends)
  B/Esc        - Leave the game
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - The default pace
  hard   - Faster start, quicker speed-up
  fixed  - No speed-up, stays at the starting pace

Haptics:
  off    - No feedback
  bell   - Terminal bell on every cue (default)
  buzzer - Short low tones on the default audio device

Examples:
  arcade play jump
  arcade play runner --difficulty easy
  arcade play snake --seed 42
  arcade play maze --config ./my-maze.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagHaptics, "haptics", "bell", "Feedback device: off, bell, buzzer")
}

func newVibrator(name string) (haptics.Vibrator, error) {
	switch name {
	case "", "off":
		return haptics.Nop{}, nil
	case "bell":
		return haptics.NewBell(os.Stdout), nil
	case "buzzer":
		return haptics.NewBuzzer(), nil
	default:
		return nil, fmt.Errorf("unknown --haptics %q (off, bell, buzzer)", name)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w; run 'arcade list' to see available games", err)
	}

	vibrator, err := newVibrator(flagHaptics)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("arcade")
	if err != nil {
		return err
	}
	defer closeLog()

	book, store := openBook(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	cfg.ConfigPath = flagConfig

	deps := tui.Deps{
		Book:     book,
		Store:    store,
		Vibrator: vibrator,
		Logger:   logger,
	}
	if err := tui.Run(game, deps, cfg); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
