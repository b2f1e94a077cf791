// treathunt is a terminal minigame: steer a circle, eat every treat, dodge
// the mines, then reach the star.
//
// Usage:
//
//	treathunt play      - Play in this terminal
//	treathunt scores    - Show the best rounds
//	treathunt serve     - Host the game over SSH, optionally with an HTTP leaderboard
//	treathunt config    - Print the effective game config as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible layouts
//	--db <path>           - Set database path (default: ~/.treathunt/scores.db)
//	--config <path>       - Load a custom game config YAML
//	--difficulty <preset> - Apply a preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game
	_ "github.com/vovakirdan/treat-hunt/internal/games/treats"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "treathunt",
	Short: "Treat Hunt - eat the treats, dodge the mines, reach the star",
	Long: `Treat Hunt is a single-screen arcade minigame for the terminal.

Steer the circle with the arrow keys. Treats make it grow and score
points, faster pickups score more. Mines cost a life, two points and
some size. Once every treat is gone the star appears: touch it to win.
Leave too few mines standing and the round is lost.

Available commands:
  play     - Play in this terminal
  scores   - View the best rounds
  serve    - Start the SSH server (and HTTP leaderboard)
  config   - Print the effective config

Examples:
  treathunt play
  treathunt play --difficulty hard
  treathunt serve --ssh :2222 --http :8080
  treathunt scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.treathunt/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
