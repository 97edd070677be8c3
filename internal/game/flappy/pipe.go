package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/sprite"
)

// Pipe geometry and motion, in world pixels.
const (
	PipeSeparation = 200 // Vertical distance between top and bottom pipe
	PipeSpeed      = 5   // Leftward scroll per tick

	GapMin = 50  // Inclusive lower bound of the gap height draw
	GapMax = 475 // Exclusive upper bound

	PipeSpawnX = 600 // X of pipes spawned after a pass
	PipeSeedX  = 700 // X of the session's first pipe
)

// Pipe is one obstacle pair: a downward pipe hanging from above and an
// upward pipe rising from below, separated by a randomly placed gap.
type Pipe struct {
	X float64

	// Gap is the gap height: the bottom edge of the top pipe. Drawn
	// uniformly from [GapMin, GapMax) at creation, fixed thereafter.
	Gap int

	TopY    float64 // Top edge of the top pipe image
	BottomY float64 // Top edge of the bottom pipe image

	// Passed is set once the bird's x exceeds this pipe's x, and stays
	// set so a pipe scores at most once.
	Passed bool

	top    *sprite.Mask
	bottom *sprite.Mask
}

// NewPipe creates a pipe at the given x and draws its gap height from
// the session rng.
func NewPipe(atlas *sprite.Atlas, rng *rand.Rand, x float64) *Pipe {
	return newPipeWithGap(atlas, x, GapMin+rng.Intn(GapMax-GapMin))
}

// newPipeWithGap places a pipe with a fixed gap height. Both edges
// derive deterministically from the gap.
func newPipeWithGap(atlas *sprite.Atlas, x float64, gap int) *Pipe {
	return &Pipe{
		X:       x,
		Gap:     gap,
		TopY:    float64(gap - sprite.PipeHeight),
		BottomY: float64(gap + PipeSeparation),
		top:     atlas.PipeTop,
		bottom:  atlas.PipeBottom,
	}
}

// Advance scrolls the pipe left by the fixed speed.
func (p *Pipe) Advance() {
	p.X -= PipeSpeed
}

// OffScreen reports whether the pipe has fully left the screen and can
// be retired.
func (p *Pipe) OffScreen() bool {
	return p.X+sprite.PipeWidth < 0
}

// CollidesWith runs the pixel-mask overlap test between the bird's
// current pose and each pipe half independently. One shared opaque
// pixel on either half is a collision; there is no near-miss state.
func (p *Pipe) CollidesWith(b *Bird) bool {
	mask := b.Mask()
	birdY := core.Round(b.Y)

	topDX := int(p.X) - int(b.X)
	topDY := int(p.TopY) - birdY
	if mask.Overlap(p.top, topDX, topDY) {
		return true
	}

	bottomDX := int(p.X) - int(b.X)
	bottomDY := int(p.BottomY) - birdY
	return mask.Overlap(p.bottom, bottomDX, bottomDY)
}
