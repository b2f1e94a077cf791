package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treat-hunt/internal/games/treats"
	"github.com/vovakirdan/treat-hunt/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best rounds",
	Long: `Display the best stored rounds, by points and then by time.

Examples:
  treathunt scores
  treathunt scores --limit 25
  treathunt scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.TopRounds(treats.GameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Treat Hunt")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'treathunt play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %-5s  %s\n", "Rank", "Points", "Result", "Time", "Lives", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %-5s  %s\n", "----", "------", "------", "----", "-----", "----")
	for i, r := range rounds {
		mm, ss := treats.Clock(r.Seconds)
		fmt.Printf("  %-4d  %-6d  %-6s  %s:%s  %-5d  %s\n",
			i+1, r.Points, r.Outcome, mm, ss, r.Lives, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(treats.GameID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
	if stats, err := store.Stats(treats.GameID); err == nil && stats.Rounds > 0 {
		fmt.Printf("Rounds: %d  Wins: %d  Average: %.1f\n", stats.Rounds, stats.Wins, stats.AvgScore)
	}
}
