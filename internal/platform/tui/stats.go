package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/treat-hunt/internal/games/treats"
)

var statsBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(1, 3)

var (
	statsWinStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	statsLossStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statsDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// StatsLines returns the plain text rows of the end-of-round report.
func StatsLines(s treats.Summary) []string {
	lines := []string{
		s.Message(),
		"",
		"Time: " + s.Time(),
		fmt.Sprintf("Lives: %d", s.Lives),
		fmt.Sprintf("Total: %d points", s.Points),
		"",
	}
	for _, b := range s.Buckets {
		lines = append(lines, fmt.Sprintf("%d %s: %d points", b.Count, bucketLabel(b), b.Points))
	}
	lines = append(lines, fmt.Sprintf("%d mines triggered: %d points", s.Mines, s.MinePoints))
	return lines
}

func bucketLabel(b treats.Bucket) string {
	name := "treats"
	if b.Kind == treats.TreatBig {
		name = "big treats"
	}
	if b.Multiplier == 1 {
		return name + " (no bonus)"
	}
	return fmt.Sprintf("%s (%dx)", name, b.Multiplier)
}

// renderStats draws the report as a modal centered in a w x h area.
func renderStats(s treats.Summary, help string, w, h int) string {
	lines := StatsLines(s)

	headline := statsLossStyle
	if s.Outcome == treats.PhaseWon {
		headline = statsWinStyle
	}
	lines[0] = headline.Render(lines[0])

	body := strings.Join(lines, "\n") + "\n\n" + statsDimStyle.Render(help)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, statsBoxStyle.Render(body))
}
