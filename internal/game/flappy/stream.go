package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/sprite"
)

// PipeManager owns the ordered sequence of active pipes, oldest
// (leftmost) first. It never goes empty during a session: every pass
// event spawns a successor before the passed pipe retires.
type PipeManager struct {
	pipes []*Pipe
	rng   *rand.Rand
	atlas *sprite.Atlas
}

// SweepResult reports what one tick's sweep over the pipes observed.
type SweepResult struct {
	// Passed counts pass events this tick. With the standard spawn
	// spacing at most one pipe can be passed per tick, but simultaneous
	// passes are each counted (and each spawn their own successor).
	Passed int

	// Collided is set the moment any pipe's mask overlaps the bird's.
	Collided bool
}

// NewPipeManager creates a manager with the session's seed pipe.
func NewPipeManager(atlas *sprite.Atlas, rng *rand.Rand) *PipeManager {
	pm := &PipeManager{
		pipes: make([]*Pipe, 0, 4),
		rng:   rng,
		atlas: atlas,
	}
	pm.pipes = append(pm.pipes, NewPipe(atlas, rng, PipeSeedX))
	return pm
}

// Sweep runs one tick over every pipe in order: collision test, pass
// check, advance, retirement mark. A collision aborts the sweep
// immediately (the session is over; nothing scores or spawns that
// tick). After the sweep one new pipe spawns per pass event, then
// retired pipes are removed in a separate pass.
func (pm *PipeManager) Sweep(b *Bird) SweepResult {
	var res SweepResult
	retire := false

	for _, p := range pm.pipes {
		if p.CollidesWith(b) {
			res.Collided = true
			return res
		}
		if !p.Passed && b.X > p.X {
			p.Passed = true
			res.Passed++
		}
		p.Advance()
		if p.OffScreen() {
			retire = true
		}
	}

	for i := 0; i < res.Passed; i++ {
		pm.pipes = append(pm.pipes, NewPipe(pm.atlas, pm.rng, PipeSpawnX))
	}

	if retire {
		kept := pm.pipes[:0]
		for _, p := range pm.pipes {
			if !p.OffScreen() {
				kept = append(kept, p)
			}
		}
		for i := len(kept); i < len(pm.pipes); i++ {
			pm.pipes[i] = nil
		}
		pm.pipes = kept
	}

	return res
}

// Pipes returns the active pipes, leftmost first.
func (pm *PipeManager) Pipes() []*Pipe {
	return pm.pipes
}
