package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kids-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leaving a game returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --difficulty easy
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagHaptics, "haptics", "bell", "Feedback device: off, bell, buzzer")
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	deps := tui.Deps{
		Book:     book,
		Store:    store,
		Vibrator: vibrator,
		Logger:   logger,
	}
	return tui.RunSession(deps, runtimeConfig())
}
