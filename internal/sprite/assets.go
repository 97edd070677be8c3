package sprite

// Sprite dimensions in world pixels, on the native 500x800 canvas.
const (
	BirdWidth  = 68
	BirdHeight = 48

	PipeWidth  = 104
	PipeHeight = 640

	GroundWidth  = 672
	GroundHeight = 224
)

// Pipe shape parameters.
const (
	pipeShaftInset = 6  // Shaft is narrower than the cap on each side
	pipeCapHeight  = 40 // Rows occupied by the full-width cap
)

// BirdFrameCount is the number of distinct flap poses.
const BirdFrameCount = 3

// Atlas is the process-wide immutable set of sprite masks, built once
// at startup and injected into whatever needs it.
type Atlas struct {
	// Bird holds the flap poses: 0 wings raised, 1 wings level,
	// 2 wings lowered. Index 1 doubles as the gliding pose.
	Bird [BirdFrameCount]*Mask

	// PipeTop is the downward-facing pipe (cap at its bottom edge),
	// PipeBottom the upward-facing one. Top is the flipped bottom.
	PipeTop    *Mask
	PipeBottom *Mask

	// Ground is the scrolling floor strip. It is drawn but never mask-
	// tested: the death floor is a plain y threshold.
	Ground *Mask
}

// Load builds the atlas. It cannot fail: all shapes are procedural.
func Load() *Atlas {
	a := &Atlas{}
	for i := 0; i < BirdFrameCount; i++ {
		a.Bird[i] = birdFrame(i)
	}
	a.PipeBottom = pipeMask()
	a.PipeTop = a.PipeBottom.FlipVertical()
	a.Ground = Solid(GroundWidth, GroundHeight)
	return a
}

// birdFrame builds one flap pose: body and beak are fixed, the wing
// sits higher or lower depending on the frame.
func birdFrame(frame int) *Mask {
	m := New(BirdWidth, BirdHeight)

	// Body
	fillEllipse(m, 30, 24, 26, 17)
	// Beak, reaching toward the right edge
	fillEllipse(m, 56, 28, 10, 6)
	// Tail stub
	fillEllipse(m, 6, 20, 6, 5)

	// Wing position per pose
	wingY := 14 + frame*10
	fillEllipse(m, 24, wingY, 12, 7)

	return m
}

// pipeMask builds the upward-facing pipe: a full-width cap on top of a
// slightly narrower shaft. The flipped copy serves as the top pipe.
func pipeMask() *Mask {
	m := New(PipeWidth, PipeHeight)
	for y := 0; y < PipeHeight; y++ {
		x1, x2 := 0, PipeWidth
		if y >= pipeCapHeight {
			x1 = pipeShaftInset
			x2 = PipeWidth - pipeShaftInset
		}
		for x := x1; x < x2; x++ {
			m.set(x, y)
		}
	}
	return m
}

// fillEllipse marks all pixels inside the ellipse centered at (cx, cy)
// with radii rx, ry as opaque.
func fillEllipse(m *Mask, cx, cy, rx, ry int) {
	if rx <= 0 || ry <= 0 {
		return
	}
	rx2 := float64(rx * rx)
	ry2 := float64(ry * ry)
	for y := cy - ry; y <= cy+ry; y++ {
		dy := float64(y - cy)
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x - cx)
			if dx*dx/rx2+dy*dy/ry2 <= 1.0 {
				m.set(x, y)
			}
		}
	}
}
