package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/sprite"
)

// GroundY is the world y of the death floor.
const GroundY = 730

// Ground is the scrolling floor: two copies of the ground strip moving
// left in lockstep, each wrapping to immediately follow the other once
// it has fully left the screen, so the belt never shows a gap.
type Ground struct {
	Y  float64
	X1 float64
	X2 float64
}

// NewGround creates the belt with the first tile at the origin and the
// second butted against it.
func NewGround(y float64) *Ground {
	return &Ground{
		Y:  y,
		X1: 0,
		X2: sprite.GroundWidth,
	}
}

// Advance scrolls both tiles by the pipe speed and wraps whichever has
// fully left the screen to the tail of the other.
func (g *Ground) Advance() {
	g.X1 -= PipeSpeed
	g.X2 -= PipeSpeed

	if g.X1+sprite.GroundWidth < 0 {
		g.X1 = g.X2 + sprite.GroundWidth
	}
	if g.X2+sprite.GroundWidth < 0 {
		g.X2 = g.X1 + sprite.GroundWidth
	}
}
