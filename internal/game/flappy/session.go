package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/sprite"
)

// State is the session's lifecycle phase.
type State int

const (
	Running State = iota
	Ended
)

// Cause names the terminal condition that ended a session.
type Cause int

const (
	CauseNone Cause = iota
	CausePipe
	CauseGround
	CauseCeiling
)

// String returns the storable name of the cause.
func (c Cause) String() string {
	switch c {
	case CausePipe:
		return "pipe"
	case CauseGround:
		return "ground"
	case CauseCeiling:
		return "ceiling"
	default:
		return ""
	}
}

// Session is one continuous play-through from spawn to terminal
// condition. All state belongs exclusively to the session and is
// mutated only by Step; no locking is needed.
type Session struct {
	bird   *Bird
	pipes  *PipeManager
	ground *Ground

	score int
	state State
	cause Cause
	ticks int
}

// NewSession builds a fresh Running session: bird at the start
// position, the seed pipe ahead of the right edge, the ground belt at
// its floor line, score zero.
func NewSession(atlas *sprite.Atlas, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	return &Session{
		bird:   NewBird(atlas, BirdStartX, BirdStartY),
		pipes:  NewPipeManager(atlas, rng),
		ground: NewGround(GroundY),
	}
}

// Step advances the session by one tick. The order is fixed: jump
// input, bird, ground, pipe sweep, terminal checks. Multiple jump
// presses within one tick have already been collapsed to one by the
// input layer.
func (s *Session) Step(jump bool) {
	if s.state != Running {
		return
	}
	s.ticks++

	if jump {
		s.bird.Jump()
	}

	s.bird.Advance()
	s.ground.Advance()

	res := s.pipes.Sweep(s.bird)
	if res.Collided {
		s.end(CausePipe)
		return
	}
	s.score += res.Passed

	if s.bird.Y+sprite.BirdHeight > s.ground.Y {
		s.end(CauseGround)
		return
	}
	if s.bird.Y < 0 {
		s.end(CauseCeiling)
	}
}

func (s *Session) end(c Cause) {
	s.state = Ended
	s.cause = c
}

// Score returns the current score. It never decreases within a session.
func (s *Session) Score() int {
	return s.score
}

// State returns Running or Ended.
func (s *Session) State() State {
	return s.state
}

// Cause returns the terminal cause, CauseNone while running.
func (s *Session) Cause() Cause {
	return s.cause
}

// Ticks returns how many ticks the session has run.
func (s *Session) Ticks() int {
	return s.ticks
}

// Bird exposes the session's bird for rendering and tests.
func (s *Session) Bird() *Bird {
	return s.bird
}

// Pipes exposes the active pipes, leftmost first.
func (s *Session) Pipes() []*Pipe {
	return s.pipes.Pipes()
}

// Ground exposes the scrolling floor.
func (s *Session) Ground() *Ground {
	return s.ground
}
