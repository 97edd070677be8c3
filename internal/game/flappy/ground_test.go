package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/sprite"
)

func TestGroundBeltNeverGaps(t *testing.T) {
	g := NewGround(GroundY)

	for tick := 0; tick < 10000; tick++ {
		g.Advance()

		// The tiles stay exactly one tile-width apart, in either order.
		diff := g.X1 - g.X2
		if diff != sprite.GroundWidth && diff != -sprite.GroundWidth {
			t.Fatalf("tick %d: tiles drifted apart, x1=%f x2=%f", tick, g.X1, g.X2)
		}

		// The leading tile always covers the left screen edge.
		lead := g.X1
		if g.X2 < lead {
			lead = g.X2
		}
		if lead > 0 {
			t.Fatalf("tick %d: left edge uncovered, lead tile at %f", tick, lead)
		}
		if lead <= -sprite.GroundWidth {
			t.Fatalf("tick %d: lead tile fully off screen without wrapping, x=%f", tick, lead)
		}

		// Two adjacent tiles starting at or left of zero span at least
		// the full screen width.
		if lead+2*sprite.GroundWidth < WorldWidth {
			t.Fatalf("tick %d: belt does not reach the right edge", tick)
		}
	}
}

func TestGroundScrollSpeed(t *testing.T) {
	g := NewGround(GroundY)
	x1, x2 := g.X1, g.X2

	g.Advance()
	if g.X1 != x1-PipeSpeed || g.X2 != x2-PipeSpeed {
		t.Errorf("ground scroll mismatch: x1 %f->%f, x2 %f->%f", x1, g.X1, x2, g.X2)
	}
}

func TestGroundWrap(t *testing.T) {
	g := NewGround(GroundY)

	// Scroll until the first tile wraps behind the second.
	ticks := sprite.GroundWidth/PipeSpeed + 1
	for i := 0; i < ticks; i++ {
		g.Advance()
	}

	if g.X1 <= g.X2 {
		t.Errorf("first tile should have wrapped behind the second: x1=%f x2=%f", g.X1, g.X2)
	}
	if g.X1 != g.X2+sprite.GroundWidth {
		t.Errorf("wrapped tile must butt against the other: x1=%f x2=%f", g.X1, g.X2)
	}
}
