// Package sprite provides the pixel-opacity masks the game collides
// with and the fixed atlas of sprite shapes. Masks live in the native
// 500x800 world-pixel space; the terminal renderer downscales
// separately and never feeds back into collision.
package sprite

// Mask is a per-pixel opacity bitmap derived from a sprite shape.
// Collision tests are exact per-pixel overlaps, not bounding boxes.
type Mask struct {
	w, h int
	bits []bool
}

// New creates an empty (fully transparent) mask.
func New(w, h int) *Mask {
	return &Mask{
		w:    w,
		h:    h,
		bits: make([]bool, w*h),
	}
}

// Solid creates a fully opaque mask.
func Solid(w, h int) *Mask {
	m := New(w, h)
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

// FromRows builds a mask from string art: '#' marks opaque pixels,
// anything else is transparent. All rows must have equal length.
func FromRows(rows []string) *Mask {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	m := New(w, h)
	for y, row := range rows {
		for x := 0; x < len(row) && x < w; x++ {
			if row[x] == '#' {
				m.set(x, y)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	return m.w
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	return m.h
}

// At reports whether the pixel at (x, y) is opaque.
// Out-of-bounds coordinates are transparent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

func (m *Mask) set(x, y int) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = true
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// FlipVertical returns a new mask mirrored top-to-bottom.
func (m *Mask) FlipVertical() *Mask {
	out := New(m.w, m.h)
	for y := 0; y < m.h; y++ {
		src := y * m.w
		dst := (m.h - 1 - y) * m.w
		copy(out.bits[dst:dst+m.w], m.bits[src:src+m.w])
	}
	return out
}

// AnyIn reports whether the rectangle [x1,x2) x [y1,y2) contains an
// opaque pixel. The rectangle is clipped to the mask bounds.
func (m *Mask) AnyIn(x1, y1, x2, y2 int) bool {
	x1 = max(0, x1)
	y1 = max(0, y1)
	x2 = min(m.w, x2)
	y2 = min(m.h, y2)
	for y := y1; y < y2; y++ {
		row := y * m.w
		for x := x1; x < x2; x++ {
			if m.bits[row+x] {
				return true
			}
		}
	}
	return false
}

// Overlap reports whether any opaque pixel of m coincides with an
// opaque pixel of other, where other's top-left corner sits at
// (ox, oy) relative to m's top-left corner. Offsets may be negative.
func (m *Mask) Overlap(other *Mask, ox, oy int) bool {
	// Intersection of m's bounds with other's shifted bounds.
	x1 := max(0, ox)
	y1 := max(0, oy)
	x2 := min(m.w, ox+other.w)
	y2 := min(m.h, oy+other.h)
	if x2 <= x1 || y2 <= y1 {
		return false
	}

	for y := y1; y < y2; y++ {
		mRow := y * m.w
		oRow := (y - oy) * other.w
		for x := x1; x < x2; x++ {
			if m.bits[mRow+x] && other.bits[oRow+x-ox] {
				return true
			}
		}
	}
	return false
}
