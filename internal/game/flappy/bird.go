// Package flappy implements the bird-through-pipes arcade game: a
// fixed-rate simulation of one bird flying through a stream of
// randomly gapped pipes, with pixel-mask collision in the native
// 500x800 world space.
package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/sprite"
)

// World dimensions and bird tuning, in world pixels per tick at 30 ticks/s.
const (
	WorldWidth  = 500
	WorldHeight = 800

	BirdStartX = 230
	BirdStartY = 350

	JumpImpulse     = -10.5 // Upward velocity set by a flap
	MaxDisplacement = 16.0  // Terminal per-tick fall distance
	RiseAccent      = 2.0   // Extra lift while displacement is negative

	MaxRotation   = 25.0 // Nose-up tilt held while rising, degrees
	RotationSpeed = 20.0 // Nose-down tilt added per falling tick
	MinRotation   = -90.0
	GlideAngle    = -80.0 // At or below this the bird stops flapping

	AnimationTime = 5 // Ticks per flap pose
)

// flapCycle is the pose sequence of one full flap: up, level, down, level.
var flapCycle = [4]int{0, 1, 2, 1}

// Bird is the player-controlled body. Its x never changes after
// creation; horizontal motion is simulated by scrolling the world.
type Bird struct {
	X     float64
	Y     float64
	Angle float64 // Visual tilt in degrees, cosmetic only

	speed     float64 // Velocity impulse of the last flap (0 before any)
	ticks     int     // Ticks elapsed since the last flap
	refHeight float64 // Y at the last flap, reference for the tilt hold

	frameTicks int // Animation counter
	frame      int // Current pose index into the atlas

	frames *sprite.Atlas
}

// NewBird creates a bird at the given world position.
func NewBird(atlas *sprite.Atlas, x, y float64) *Bird {
	return &Bird{
		X:         x,
		Y:         y,
		refHeight: y,
		frames:    atlas,
	}
}

// Jump applies the flap impulse: velocity snaps to JumpImpulse, the
// elapsed-tick counter restarts, and the current height becomes the
// reference for the nose-up hold. Always succeeds.
func (b *Bird) Jump() {
	b.speed = JumpImpulse
	b.ticks = 0
	b.refHeight = b.Y
}

// Advance moves the bird by one tick: kinematic displacement, tilt
// update, then flap animation.
func (b *Bird) Advance() {
	b.ticks++
	t := float64(b.ticks)

	// d = 1.5*t^2 + v0*t, capped on the way down, accentuated on the
	// way up.
	d := 1.5*t*t + b.speed*t
	if d > MaxDisplacement {
		d = MaxDisplacement
	} else if d < 0 {
		d -= RiseAccent
	}
	b.Y += d

	// While rising, or still above the flap height plus a margin, hold
	// the nose up; otherwise rotate toward the dive pose.
	if d < 0 || b.Y < b.refHeight+50 {
		if b.Angle < MaxRotation {
			b.Angle = MaxRotation
		}
	} else if b.Angle > MinRotation {
		b.Angle -= RotationSpeed
		if b.Angle < MinRotation {
			b.Angle = MinRotation
		}
	}

	b.advanceFrame()
}

// advanceFrame steps the flap cycle. A diving bird stops flapping and
// holds the level pose.
func (b *Bird) advanceFrame() {
	b.frameTicks++
	if b.frameTicks >= AnimationTime*len(flapCycle) {
		b.frameTicks = 0
	}
	b.frame = flapCycle[b.frameTicks/AnimationTime]

	if b.Angle <= GlideAngle {
		b.frame = 1
		b.frameTicks = AnimationTime * 2
	}
}

// Frame returns the current pose index.
func (b *Bird) Frame() int {
	return b.frame
}

// Mask returns the opacity mask of the current pose. Collision uses
// the unrotated frame; the tilt is cosmetic.
func (b *Bird) Mask() *sprite.Mask {
	return b.frames.Bird[b.frame]
}
