package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/sprite"
)

// rawDisplacement mirrors the flight formula: d = 1.5*t^2 + v0*t,
// capped at +16, with an extra -2 while negative.
func rawDisplacement(v0 float64, t int) float64 {
	ft := float64(t)
	d := 1.5*ft*ft + v0*ft
	if d > MaxDisplacement {
		d = MaxDisplacement
	} else if d < 0 {
		d -= RiseAccent
	}
	return d
}

func newTestBird() *Bird {
	return NewBird(sprite.Load(), BirdStartX, BirdStartY)
}

func TestJumpResetsState(t *testing.T) {
	b := newTestBird()

	// Age the bird a little first
	for i := 0; i < 7; i++ {
		b.Advance()
	}

	y := b.Y
	b.Jump()

	if b.speed != JumpImpulse {
		t.Errorf("speed after Jump() = %f, expected %f", b.speed, JumpImpulse)
	}
	if b.ticks != 0 {
		t.Errorf("ticks after Jump() = %d, expected 0", b.ticks)
	}
	if b.refHeight != y {
		t.Errorf("refHeight after Jump() = %f, expected %f", b.refHeight, y)
	}
	if b.Y != y {
		t.Error("Jump() itself must not move the bird")
	}

	// Jump is idempotent on prior state: a second jump resets again
	b.Advance()
	b.Jump()
	if b.speed != JumpImpulse || b.ticks != 0 {
		t.Error("repeated Jump() must reset regardless of prior state")
	}
}

func TestAdvanceFollowsDisplacementFormula(t *testing.T) {
	// Gravity only (v0 = 0)
	b := newTestBird()
	y := b.Y
	for tick := 1; tick <= 10; tick++ {
		b.Advance()
		y += rawDisplacement(0, tick)
		if b.Y != y {
			t.Fatalf("tick %d: y = %f, expected %f", tick, b.Y, y)
		}
	}

	// After a jump (v0 = -10.5)
	b = newTestBird()
	b.Jump()
	y = b.Y
	for tick := 1; tick <= 10; tick++ {
		b.Advance()
		y += rawDisplacement(JumpImpulse, tick)
		if b.Y != y {
			t.Fatalf("post-jump tick %d: y = %f, expected %f", tick, b.Y, y)
		}
	}
}

func TestAdvanceClampsFall(t *testing.T) {
	b := newTestBird()

	// By tick 4 the raw displacement (24) exceeds the cap.
	var last float64
	for tick := 1; tick <= 6; tick++ {
		before := b.Y
		b.Advance()
		last = b.Y - before
	}
	if last != MaxDisplacement {
		t.Errorf("terminal per-tick fall = %f, expected %f", last, MaxDisplacement)
	}
}

func TestAdvanceAccentuatesRise(t *testing.T) {
	b := newTestBird()
	b.Jump()

	before := b.Y
	b.Advance()
	// t=1: 1.5 - 10.5 = -9, accented to -11.
	if got := b.Y - before; got != -11.0 {
		t.Errorf("first rise tick moved %f, expected -11", got)
	}
}

func TestAngleHoldsWhileRising(t *testing.T) {
	b := newTestBird()
	b.Jump()

	for i := 0; i < 5; i++ {
		b.Advance()
		if b.Angle != MaxRotation {
			t.Fatalf("tick %d: angle = %f, expected %f while rising", i+1, b.Angle, MaxRotation)
		}
	}
}

func TestAngleDivesToFloor(t *testing.T) {
	b := newTestBird()

	// Let it fall far past the reference height.
	for i := 0; i < 30; i++ {
		b.Advance()
	}
	if b.Angle != MinRotation {
		t.Errorf("angle after a long dive = %f, expected %f", b.Angle, MinRotation)
	}
}

func TestFlapCycle(t *testing.T) {
	b := newTestBird()

	// Jump every tick so the bird keeps rising and never enters the
	// non-flapping dive pose.
	var got []int
	for i := 0; i < AnimationTime*4; i++ {
		b.Jump()
		b.Advance()
		got = append(got, b.Frame())
	}

	// frameTicks runs 1..19 then wraps to 0: poses 0,1,2,1 at five
	// ticks per phase, the cycle restarting on the last sampled tick.
	for i, f := range got {
		tick := i + 1
		want := flapCycle[(tick%(AnimationTime*4))/AnimationTime]
		if f != want {
			t.Fatalf("tick %d: frame = %d, expected %d (sequence %v)", tick, f, want, got)
		}
	}
}

func TestDiveStopsFlapping(t *testing.T) {
	b := newTestBird()

	for i := 0; i < 30; i++ {
		b.Advance()
	}
	if b.Angle > GlideAngle {
		t.Fatalf("setup failed: angle %f not at glide threshold", b.Angle)
	}
	if b.Frame() != 1 {
		t.Errorf("diving bird frame = %d, expected the level pose 1", b.Frame())
	}

	// Pose stays fixed while the dive lasts.
	b.Advance()
	if b.Frame() != 1 {
		t.Error("diving bird should hold the level pose")
	}
}

func TestMaskMatchesFrame(t *testing.T) {
	atlas := sprite.Load()
	b := NewBird(atlas, BirdStartX, BirdStartY)

	if b.Mask() != atlas.Bird[b.Frame()] {
		t.Error("Mask() should return the current frame's mask")
	}

	b.Advance()
	if b.Mask() != atlas.Bird[b.Frame()] {
		t.Error("Mask() should track the frame as it advances")
	}
}

func TestBirdXNeverChanges(t *testing.T) {
	b := newTestBird()
	for i := 0; i < 50; i++ {
		if i%7 == 0 {
			b.Jump()
		}
		b.Advance()
		if b.X != BirdStartX {
			t.Fatalf("x changed to %f at tick %d", b.X, i+1)
		}
	}
}
