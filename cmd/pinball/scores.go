package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/registry"
	"github.com/vovakirdan/tui-pinball/internal/storage"
)

var scoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <table>",
	Short: "Show high scores for a table",
	Long: `Display the top high scores and totals for the specified table.
Autopilot runs from 'pinball spectate' are stored as <table>_autopilot.

Examples:
  pinball scores pinball
  pinball scores pinball_practice --limit 20
  pinball scores pinball_autopilot`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&scoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	title := gameID
	if game, err := registry.Create(gameID); err == nil {
		title = game.Title()
	} else if base, ok := autopilotBase(gameID); !ok || !registry.Exists(base) {
		fmt.Fprintf(os.Stderr, "Error: unknown table %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pinball list' to see available tables.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, scoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pinball play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "Rank", "Score", "Balls", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-8s  %s\n", i+1, entry.Score, entry.Drained, playTime(entry.Ticks), dateStr)
	}

	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Balls drained: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalDrained)
	}
}

// autopilotBase strips the autopilot suffix from a score ID.
func autopilotBase(gameID string) (string, bool) {
	const suffix = "_autopilot"
	if !strings.HasSuffix(gameID, suffix) {
		return "", false
	}
	return strings.TrimSuffix(gameID, suffix), true
}

// playTime converts simulation ticks at the stock tick rate to a duration.
func playTime(ticks int64) string {
	tickRate := config.DefaultPinballConfig().Physics.TickRate
	if tickRate <= 0 {
		return "-"
	}
	return (time.Duration(ticks) * time.Second / time.Duration(tickRate)).Truncate(time.Second).String()
}
