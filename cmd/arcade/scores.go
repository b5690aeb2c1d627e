package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/scores"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best records and recent rounds",
	Long: `Without a game, lists the best record of every game played so far.
With a game, shows its record and its best recorded rounds.

Examples:
  arcade scores
  arcade scores jump
  arcade scores maze --limit 5
  arcade scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the game's round history (the best record stays)")
}

func stars(n int) string {
	n = min(max(n, 0), scores.MaxStars)
	return strings.Repeat("★", n) + strings.Repeat("☆", scores.MaxStars-n)
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger("arcade")
	if err != nil {
		return err
	}
	defer closeLog()

	book, store := openBook(logger)
	if store != nil {
		defer store.Close()
	}

	if len(args) == 0 {
		printAllRecords(book)
		return nil
	}

	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w; run 'arcade list' to see available games", err)
	}
	game.Reset(runtimeConfig())
	dir := game.Scale().Direction

	if flagScoresClear {
		if store == nil {
			return errors.New("no scores database to clear")
		}
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared round history for %s.\n", game.Title())
		return nil
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	rec := book.Get(gameID)
	if rec.Empty() {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to earn the first stars!\n", gameID)
		return nil
	}
	best := fmt.Sprintf("Best: %d  %s", rec.BestScore, stars(rec.BestStars))
	if dir == scores.LowerIsBetter {
		best += "  (fewer is better)"
	}
	fmt.Println(best)

	if store == nil {
		return nil
	}
	entries, err := store.TopScores(gameID, flagScoresLimit, dir == scores.LowerIsBetter)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Stars", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5s  %s\n", i+1, entry.Score, stars(entry.Stars), dateStr)
	}

	if st, err := store.GameStats(gameID); err == nil && st.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Rounds: %d  Average: %.1f\n", st.GamesCount, st.AvgScore)
	}
	return nil
}

func printAllRecords(book *scores.Book) {
	all := book.All()
	if len(all) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Best records:")
	fmt.Println()
	for _, id := range ids {
		title := id
		if info, ok := registry.Info(id); ok {
			title = info.Title
		}
		rec := all[id]
		fmt.Printf("  %-16s  %s  %d\n", title, stars(rec.BestStars), rec.BestScore)
	}
}
