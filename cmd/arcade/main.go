// arcade is a terminal arcade of small games for young children.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Serve the arcade over SSH and HTTP
//	arcade scores [game]     - Show best records and recent rounds
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate (default: each game's own pace)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/scores"
	"github.com/vovakirdan/kids-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/kids-arcade/internal/games/carwash"
	_ "github.com/vovakirdan/kids-arcade/internal/games/digger"
	_ "github.com/vovakirdan/kids-arcade/internal/games/firetruck"
	_ "github.com/vovakirdan/kids-arcade/internal/games/jump"
	_ "github.com/vovakirdan/kids-arcade/internal/games/maze"
	_ "github.com/vovakirdan/kids-arcade/internal/games/memory"
	_ "github.com/vovakirdan/kids-arcade/internal/games/orchard"
	_ "github.com/vovakirdan/kids-arcade/internal/games/quiz"
	_ "github.com/vovakirdan/kids-arcade/internal/games/runner"
	_ "github.com/vovakirdan/kids-arcade/internal/games/snake"
	_ "github.com/vovakirdan/kids-arcade/internal/games/toss"
	_ "github.com/vovakirdan/kids-arcade/internal/games/tractor"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Kids Arcade - tiny games in your terminal",
	Long: `Kids Arcade is a set of small, forgiving games for young players.
Every round ends with one to three stars and the best record is kept.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Serve the arcade over SSH and HTTP
  scores   - View best records

Examples:
  arcade list
  arcade play jump
  arcade menu --difficulty easy
  arcade serve --ssh :2222 --http :8080
  arcade scores snake`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q", flagLogLevel)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = each game's own pace)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger from the global flags. The returned
// closer releases the log file, if any.
func newLogger(prefix string) (*log.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	level, _ := log.ParseLevel(flagLogLevel)
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// openBook opens the score database. Without it the arcade still works and
// records live in memory until exit.
func openBook(logger *log.Logger) (*scores.Book, *storage.Store) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, records will not be kept", "path", flagDBPath, "error", err)
		return scores.NewBook(nil, logger), nil
	}
	return scores.NewBook(store, logger), store
}

// runtimeConfig sizes the round to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Preset = flagDifficulty
	return cfg
}
