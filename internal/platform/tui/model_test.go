package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/treat-hunt/internal/core"
	"github.com/vovakirdan/treat-hunt/internal/games/treats"
	"github.com/vovakirdan/treat-hunt/internal/storage"
)

// stubGame finishes its round whenever over is set.
type stubGame struct {
	over    bool
	steps   int
	resized bool
	last    core.InputFrame
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub board") }
func (g *stubGame) State() core.GameState    { return core.GameState{Score: 7, GameOver: g.over} }
func (g *stubGame) Resize(int, int)          { g.resized = true }
func (g *stubGame) Summary() treats.Summary  { return treats.Summary{Outcome: treats.PhaseWon, Points: 7, Elapsed: 12} }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in
	return core.StepResult{State: g.State()}
}

type fakeStore struct {
	fakeLister
	saved []storage.RoundRecord
}

func (s *fakeStore) SaveRound(r storage.RoundRecord) (string, error) {
	s.saved = append(s.saved, r)
	return "id-1", nil
}

func newTestModel(g *stubGame, store Store) Model {
	return NewModel(g, store, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 32, TickRate: 60, Seed: 1})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelForwardsActions(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg{})

	if !g.last.Has(core.ActionStart) || !g.last.Has(core.ActionRight) {
		t.Errorf("frame actions = %v, expected start and right", g.last.Actions())
	}
	if got := g.last.Actions(); got[0] != core.ActionStart {
		t.Errorf("first action = %v, expected start", got[0])
	}

	m = update(t, m, TickMsg{})
	if len(g.last.Actions()) != 0 {
		t.Errorf("frame not cleared between ticks: %v", g.last.Actions())
	}
}

func TestModelSavesFinishedRoundOnce(t *testing.T) {
	g := &stubGame{}
	store := &fakeStore{}
	m := newTestModel(g, store)

	g.over = true
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(store.saved) != 1 {
		t.Fatalf("saved %d rounds, expected 1", len(store.saved))
	}
	rec := store.saved[0]
	if rec.GameID != "stub" || rec.Outcome != "won" || rec.Points != 7 || rec.Seconds != 12 {
		t.Errorf("saved record = %+v", rec)
	}
	if m.lastSaved != "id-1" {
		t.Errorf("lastSaved = %q", m.lastSaved)
	}
	if m.summary == nil || !strings.Contains(m.View(), "You win!") {
		t.Error("stats modal not shown")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.summary != nil {
		t.Error("modal still open after esc")
	}
	if !strings.Contains(m.View(), "stub board") {
		t.Error("board not shown after closing the modal")
	}

	// A new round clears the finished state; the next game over saves again.
	g.over = false
	m = update(t, m, TickMsg{})
	g.over = true
	m = update(t, m, TickMsg{})
	if len(store.saved) != 2 {
		t.Errorf("saved %d rounds, expected 2", len(store.saved))
	}
}

func TestModelScoreboardToggle(t *testing.T) {
	g := &stubGame{}
	store := &fakeStore{fakeLister: fakeLister{rounds: []storage.RoundRecord{{Points: 55, Outcome: "won"}}}}
	m := newTestModel(g, store)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatal("tab did not open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Stub") {
		t.Error("scoreboard not rendered")
	}

	// Game keys do not reach the game while the scoreboard is open.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	if g.last.Has(core.ActionStart) {
		t.Error("enter leaked through the scoreboard")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewGame {
		t.Error("tab did not return to the game")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if !g.resized {
		t.Error("game not resized")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{}, nil)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestRecordFromSummary(t *testing.T) {
	s := treats.Summary{
		Outcome: treats.PhaseLost,
		Points:  9,
		Lives:   0,
		Elapsed: 64,
		Mines:   3,
		Buckets: []treats.Bucket{
			{Kind: treats.TreatSmall, Multiplier: 3, Count: 1},
			{Kind: treats.TreatBig, Multiplier: 3, Count: 2},
			{Kind: treats.TreatSmall, Multiplier: 2, Count: 3},
			{Kind: treats.TreatBig, Multiplier: 2, Count: 4},
			{Kind: treats.TreatSmall, Multiplier: 1, Count: 5},
			{Kind: treats.TreatBig, Multiplier: 1, Count: 6},
		},
	}

	r := RecordFromSummary("treats", s)
	expected := storage.RoundRecord{
		GameID: "treats", Outcome: "lost", Points: 9, Lives: 0, Seconds: 64, Mines: 3,
		TreatsX3: 1, BigTreatsX3: 2, TreatsX2: 3, BigTreatsX2: 4, TreatsX1: 5, BigTreatsX1: 6,
	}
	if r != expected {
		t.Errorf("record = %+v\nexpected %+v", r, expected)
	}
}
