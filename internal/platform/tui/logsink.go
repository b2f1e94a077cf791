package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treat-hunt/internal/games/treats"
)

// LogSink writes round reports to a structured logger.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink logging to logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) ReportScore(points int) {
	s.logger.Debug("score", "points", points)
}

func (s *LogSink) ReportLives(lives int) {
	s.logger.Debug("lives", "lives", lives)
}

// ReportTime is silent; the clock reports every second.
func (s *LogSink) ReportTime(string, string) {}

func (s *LogSink) ReportOutcome(outcome treats.Phase, summary treats.Summary) {
	s.logger.Info("round over",
		"outcome", outcome,
		"points", summary.Points,
		"lives", summary.Lives,
		"time", summary.Time(),
		"mines", summary.Mines,
		"attempt", summary.Attempt,
	)
}
