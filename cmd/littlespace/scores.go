package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/StevenRydell/littlespace/internal/platform/tui"
	"github.com/StevenRydell/littlespace/internal/registry"
	"github.com/StevenRydell/littlespace/internal/storage"
)

var (
	flagRuns      int
	flagAllScores bool
	flagClear     bool
	flagBoard     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and run stats",
	Long: `Display the top 10 high scores and the latest runs for a demo.
Without a demo, shows a summary of every demo that has been played.

Examples:
  littlespace scores
  littlespace scores skirmish
  littlespace scores skirmish --runs 20
  littlespace scores flight --all
  littlespace scores circle --clear
  littlespace scores --board`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Show every recorded score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the demo")
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Browse scores and runs interactively")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}

	switch {
	case flagBoard:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, width, height)
	case len(args) == 0:
		err = printSummary(store)
	default:
		err = printGameScores(store, args[0])
	}
	store.Close()

	if err != nil {
		fail("%v", err)
	}
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'littlespace list' to pick a demo.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-6s  %-8s  %-6s  %-8s  %s\n", "Game", "Games", "Best", "Runs", "Accuracy", "Played")
	fmt.Printf("  %-10s  %-6s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "----", "----", "--------", "------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-10s  %-6d  %-8d  %-6d  %-8s  %s\n",
			id, st.GamesCount, st.HighScore, st.Runs,
			fmt.Sprintf("%.0f%%", st.Accuracy()*100), st.PlayTime.Round(time.Second))
	}
	return nil
}

func printGameScores(store *storage.Store, gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q\nRun 'littlespace list' to see available demos", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'littlespace play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	return printRuns(store, gameID)
}

func printRuns(store *storage.Store, gameID string) error {
	if flagRuns <= 0 {
		return nil
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Printf("Runs: %d  Kills: %d  Shots: %d  Accuracy: %.0f%%  Played: %s\n",
		stats.Runs, stats.TotalKills, stats.TotalShots, stats.Accuracy()*100,
		stats.PlayTime.Round(time.Second))
	fmt.Println()

	fmt.Println("Recent runs:")
	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %-8s  %s\n", "Score", "Kills", "Shots", "Accuracy", "Time", "Date")
	for _, r := range runs {
		fmt.Printf("  %-10d  %-6d  %-6d  %-8s  %-8s  %s\n",
			r.Score, r.Kills, r.Shots,
			fmt.Sprintf("%.0f%%", r.Accuracy()*100),
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
