package treats

import (
	"fmt"

	"github.com/vovakirdan/treat-hunt/internal/config"
	"github.com/vovakirdan/treat-hunt/internal/core"
	"github.com/vovakirdan/treat-hunt/internal/registry"
)

// GameID is the registry identifier.
const GameID = "treats"

const hudHeight = 2

// Package-level config, set once by the CLI before any game is created.
var gameConfig = config.DefaultTreatsConfig()

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.TreatsConfig) {
	gameConfig = cfg
}

// CurrentConfig returns the configuration new games will use.
func CurrentConfig() config.TreatsConfig {
	return gameConfig
}

// Game adapts a Round to the platform's tick loop. Key presses become moves
// and ticks are folded into whole seconds for the round clock.
type Game struct {
	cfg    config.TreatsConfig
	round  *Round
	canvas *core.Screen
	hud    hud
	extra  Sink

	tick     uint64
	subTicks int
	tickRate int
	screenW  int
	screenH  int
	tooSmall bool
	err      error
}

// New creates a Treat Hunt game using the current package config.
func New() *Game {
	return &Game{cfg: gameConfig}
}

// NewWithConfig creates a game with an explicit config.
func NewWithConfig(cfg config.TreatsConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Treat Hunt"
}

// SetSink adds a sink that receives every round report alongside the HUD.
func (g *Game) SetSink(s Sink) {
	g.extra = s
	if g.round != nil {
		g.round.SetSink(MultiSink{&g.hud, g.extra})
	}
}

// RequiredSize returns the smallest screen that fits the board and HUD.
func (g *Game) RequiredSize() (w, h int) {
	cw, ch := CanvasSize(g.cfg.Canvas.Columns(), g.cfg.Canvas.Rows())
	return cw, ch + hudHeight
}

// Reset prepares an idle round. The first round starts on ActionStart.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.subTicks = 0
	g.tickRate = cfg.TicksPerSecond()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.err = nil

	reqW, reqH := g.RequiredSize()
	g.tooSmall = g.screenW < reqW || g.screenH < reqH

	cw, ch := CanvasSize(g.cfg.Canvas.Columns(), g.cfg.Canvas.Rows())
	g.canvas = core.NewScreen(cw, ch)

	g.hud = hud{lives: g.cfg.Rules.Lives, mm: "00", ss: "00"}
	g.round = NewRound(g.cfg, cfg.Seed)
	g.round.SetRenderer(NewScreenRenderer(g.canvas, float64(g.cfg.Canvas.Grid)))
	g.round.SetSink(MultiSink{&g.hud, g.extra})
	g.round.Redraw()
}

// Resize updates the screen size without touching the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	reqW, reqH := g.RequiredSize()
	g.tooSmall = g.screenW < reqW || g.screenH < reqH
}

// Step advances the clock, then applies the frame's actions in order.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	g.subTicks++
	if g.subTicks >= g.tickRate {
		g.subTicks = 0
		g.round.TickSecond()
	}

	if !g.tooSmall {
		for _, a := range input.Actions() {
			g.apply(a)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionStart:
		g.start()
	case core.ActionRestart:
		if g.round.Phase().Terminal() {
			g.start()
		}
	case core.ActionUp:
		g.round.Move(DirUp)
	case core.ActionDown:
		g.round.Move(DirDown)
	case core.ActionLeft:
		g.round.Move(DirLeft)
	case core.ActionRight:
		g.round.Move(DirRight)
	}
}

// start begins a fresh round and restarts the sub-second accumulator with it.
func (g *Game) start() {
	g.subTicks = 0
	g.hud.message = ""
	g.err = g.round.Start()
}

// State returns the coarse state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.round.Points(),
		GameOver: g.round.Phase().Terminal(),
	}
}

// Phase returns the round phase.
func (g *Game) Phase() Phase {
	return g.round.Phase()
}

// Summary returns the report for the current round.
func (g *Game) Summary() Summary {
	return g.round.Summary()
}

// Err returns the error from the last failed start, if any.
func (g *Game) Err() error {
	return g.err
}

// Render draws the HUD and board to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.RequiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Resize to at least %dx%d", w, h))
		return
	}

	offsetX := (dst.Width() - g.canvas.Width()) / 2
	dst.Blit(g.canvas, offsetX, hudHeight)

	switch {
	case g.err != nil:
		g.renderOverlay(dst, "Could not start round", "Press Enter to try again")
	case g.round.Phase() == PhaseIdle:
		g.renderOverlay(dst, "Treat Hunt", "Press Enter to begin!")
	case g.round.Phase().Terminal():
		g.renderOverlay(dst, g.hud.message, "Press R to play again")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	line := fmt.Sprintf(" Treat Hunt — Points: %d  Lives: %d  Time: %s:%s  Attempt: %d",
		g.hud.points, g.hud.lives, g.hud.mm, g.hud.ss, g.round.Attempts())
	dst.DrawTextColored(0, 0, line, core.ColorWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, 5)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

// hud mirrors the round readouts for drawing.
type hud struct {
	points  int
	lives   int
	mm, ss  string
	message string
}

func (h *hud) ReportScore(points int)           { h.points = points }
func (h *hud) ReportLives(lives int)            { h.lives = lives }
func (h *hud) ReportTime(mm, ss string)         { h.mm, h.ss = mm, ss }
func (h *hud) ReportOutcome(_ Phase, s Summary) { h.message = s.Message() }
