package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/sprite"
)

// Rendering glyphs.
const (
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	birdChar      = '●'
	beakChar      = '▶'
	groundChar    = '═'
	dirtChar      = '░'
)

// Render draws the world into the cell buffer, back to front:
// pipes, bird, score, ground, then any overlay. The world runs in
// 500x800 pixels and is downscaled to whatever the terminal offers.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	s := g.session
	sx := float64(dst.Width()) / WorldWidth
	sy := float64(dst.Height()) / WorldHeight
	groundRow := int(GroundY * sy)

	for _, p := range s.Pipes() {
		g.drawPipe(dst, p, sx, sy, groundRow)
	}

	g.drawBird(dst, s.Bird(), sx, sy)

	score := fmt.Sprintf("Score: %d", s.Score())
	dst.DrawTextColored(dst.Width()-len(score)-2, 1, score, core.ColorBrightWhite)

	g.drawGround(dst, s.Ground(), sx, groundRow)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if s.State() == Ended {
		g.drawCenteredMessage(dst,
			fmt.Sprintf("Game Over! Score: %d", s.Score()),
			fmt.Sprintf("%s - restarting, R to skip", causeLabel(s.Cause())),
		)
	}
}

func causeLabel(c Cause) string {
	switch c {
	case CausePipe:
		return "Hit a pipe"
	case CauseGround:
		return "Hit the ground"
	case CauseCeiling:
		return "Flew too high"
	default:
		return ""
	}
}

func (g *Game) drawPipe(dst *core.Screen, p *Pipe, sx, sy float64, groundRow int) {
	x1 := int(p.X * sx)
	x2 := int((p.X + sprite.PipeWidth) * sx)
	if x2 <= x1 {
		x2 = x1 + 1
	}

	// Top pipe hangs from the ceiling down to the gap height.
	gapRow := int(float64(p.Gap) * sy)
	for y := 0; y < gapRow; y++ {
		ch := pipeChar
		if y == gapRow-1 {
			ch = pipeCapTop
		}
		for x := x1; x < x2; x++ {
			dst.SetColored(x, y, ch, core.ColorGreen)
		}
	}

	// Bottom pipe rises from below the gap to the ground line.
	bottomRow := int(p.BottomY * sy)
	for y := bottomRow; y < groundRow; y++ {
		ch := pipeChar
		if y == bottomRow {
			ch = pipeCapBottom
		}
		for x := x1; x < x2; x++ {
			dst.SetColored(x, y, ch, core.ColorGreen)
		}
	}
}

// drawBird marks every cell whose world-space footprint holds at least
// one opaque pixel of the current pose mask, so the silhouette follows
// the same pixels collision sees. The tilt stays cosmetic: only the
// beak glyph leans with it.
func (g *Game) drawBird(dst *core.Screen, b *Bird, sx, sy float64) {
	mask := b.Mask()

	y1 := int(b.Y * sy)
	y2 := int((b.Y + sprite.BirdHeight) * sy)
	x1 := int(b.X * sx)
	x2 := int((b.X + sprite.BirdWidth) * sx)
	if y2 <= y1 {
		y2 = y1 + 1
	}
	if x2 <= x1 {
		x2 = x1 + 1
	}

	beakRow := (y1 + y2) / 2
	for cy := y1; cy < y2; cy++ {
		py1 := int(float64(cy)/sy - b.Y)
		py2 := int(float64(cy+1)/sy - b.Y)
		for cx := x1; cx < x2; cx++ {
			px1 := int(float64(cx)/sx - b.X)
			px2 := int(float64(cx+1)/sx - b.X)
			if !mask.AnyIn(px1, py1, px2, py2) {
				continue
			}
			ch := birdChar
			if cx == x2-1 && cy == beakRow {
				ch = beakChar
			}
			dst.SetColored(cx, cy, ch, core.ColorBrightYellow)
		}
	}
}

func (g *Game) drawGround(dst *core.Screen, gr *Ground, sx float64, groundRow int) {
	dst.DrawHLine(0, groundRow, dst.Width(), groundChar, core.ColorYellow)

	// The dirt below carries a mark every few cells, shifted by the
	// belt offset so the scroll is visible.
	offset := int(gr.X1 * sx)
	for y := groundRow + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			ch := dirtChar
			if mod(x-offset, 6) == 0 {
				ch = '▒'
			}
			dst.SetColored(x, y, ch, core.ColorGray)
		}
	}
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
