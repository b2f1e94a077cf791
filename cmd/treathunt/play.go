package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treat-hunt/internal/core"
	"github.com/vovakirdan/treat-hunt/internal/games/treats"
	"github.com/vovakirdan/treat-hunt/internal/platform/tui"
	"github.com/vovakirdan/treat-hunt/internal/registry"
	"github.com/vovakirdan/treat-hunt/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Treat Hunt",
	Long: `Start Treat Hunt in this terminal.

Controls:
  Arrows/WASD - Move the circle
  Enter       - Start, or restart at any time
  R           - Play again after a round ends
  Esc/X       - Close the round stats
  Tab         - Scoreboard
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 4 lives, longer bonus windows
  normal - Defaults
  hard   - 2 lives, shorter bonus windows
  fixed  - Exactly what the config says

The board needs an 80x32 terminal.

Examples:
  treathunt play
  treathunt play --difficulty easy
  treathunt play --config ./my-treats.yaml --log ./treathunt.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file (the terminal belongs to the game)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if _, err := loadGameConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(treats.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The game still works without storage.
	var store tui.Store
	if s, openErr := storage.Open(flagDBPath); openErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", openErr)
	} else {
		defer s.Close()
		store = s
	}

	logger.Info("starting", "seed", cfg.Seed, "fps", cfg.TickRate, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, logger, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
