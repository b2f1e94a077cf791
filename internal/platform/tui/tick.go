// Package tui runs Treat Hunt in a terminal, locally or over SSH.
// It maps keys to game actions, drives the tick loop, shows the end-of-round
// stats and the scoreboard, and saves finished rounds.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/treat-hunt/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick for the config's rate.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	interval := time.Second / time.Duration(cfg.TicksPerSecond())
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
