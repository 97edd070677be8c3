package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/sprite"
)

// GameOverHoldSeconds is how long the game-over report stays up before
// a fresh session starts on its own.
const GameOverHoldSeconds = 3

// Game drives sessions for the platform: it implements core.Game,
// supervises the Running/Ended transition, and replaces a dead session
// with a freshly built one rather than reviving it in place.
type Game struct {
	atlas   *sprite.Atlas
	session *Session
	cfg     core.RuntimeConfig

	// seeds yields one seed per session so auto-restarts stay
	// deterministic under a fixed --seed.
	seeds *rand.Rand

	paused    bool
	overTicks int // Ticks spent on the game-over screen
}

// New creates an uninitialized game; Reset must run before Step.
func New() *Game {
	return &Game{}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset loads the sprite atlas once and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	if g.atlas == nil {
		g.atlas = sprite.Load()
	}
	g.seeds = rand.New(rand.NewSource(cfg.Seed))
	g.paused = false
	g.startSession()
}

func (g *Game) startSession() {
	g.session = NewSession(g.atlas, g.seeds.Int63())
	g.overTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.session.State() == Ended {
		// Hold the report, then restart on a timer. R skips the wait.
		g.overTicks++
		if in.Has(core.ActionRestart) || g.overTicks >= GameOverHoldSeconds*g.tickRate() {
			g.startSession()
		}
		return core.StepResult{State: g.State()}
	}

	g.session.Step(in.Has(core.ActionJump))
	return core.StepResult{State: g.State()}
}

func (g *Game) tickRate() int {
	if g.cfg.TickRate > 0 {
		return g.cfg.TickRate
	}
	return core.DefaultConfig().TickRate
}

// State reports the session's score and terminal status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == Ended,
		Cause:    g.session.Cause().String(),
		Ticks:    g.session.Ticks(),
		Paused:   g.paused,
	}
}

// Session exposes the current session for rendering and tests.
func (g *Game) Session() *Session {
	return g.session
}
