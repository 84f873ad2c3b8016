package engine

import "math"

// Default zoom bounds in pixels per cell.
const (
	MinScale     = 2.0
	MaxScale     = 200.0
	DefaultScale = 14.0
)

// Viewport is the affine map between grid space and screen pixels:
// screen = grid*Scale + Offset. The forward and inverse maps are exact
// inverses, which is what keeps the cell under the cursor fixed across
// zoom operations.
type Viewport struct {
	Scale   float64 // pixels per cell
	OffsetX float64 // screen position of grid origin
	OffsetY float64
}

// NewViewport returns a viewport at the default scale with the origin at
// the top-left corner of the screen.
func NewViewport() Viewport {
	return Viewport{Scale: DefaultScale}
}

// ToGrid maps a screen point to the cell containing it. Floor rather than
// truncation, so negative coordinates resolve correctly across zero.
func (v Viewport) ToGrid(sx, sy float64) Cell {
	return Cell{
		X: int64(math.Floor((sx - v.OffsetX) / v.Scale)),
		Y: int64(math.Floor((sy - v.OffsetY) / v.Scale)),
	}
}

// ToScreen maps a cell to the screen position of its top-left corner.
func (v Viewport) ToScreen(c Cell) (float64, float64) {
	return float64(c.X)*v.Scale + v.OffsetX, float64(c.Y)*v.Scale + v.OffsetY
}

// Pan translates the viewport by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ZoomAt scales the viewport by factor while keeping the grid coordinate
// under the screen point (sx, sy) fixed. The offset is re-derived from the
// anchor so repeated zooms accumulate no drift.
func (v *Viewport) ZoomAt(sx, sy, factor float64) {
	scale := clampFloat(v.Scale*factor, MinScale, MaxScale)
	if scale == v.Scale {
		return
	}
	ratio := scale / v.Scale
	v.OffsetX = sx - (sx-v.OffsetX)*ratio
	v.OffsetY = sy - (sy-v.OffsetY)*ratio
	v.Scale = scale
}

// SetScale sets the zoom level directly, clamped to the valid range.
func (v *Viewport) SetScale(scale float64) {
	v.Scale = clampFloat(scale, MinScale, MaxScale)
}

// Center positions the grid origin at the center of a w*h screen.
func (v *Viewport) Center(w, h int) {
	v.OffsetX = float64(w) / 2
	v.OffsetY = float64(h) / 2
}

// VisibleCells returns the inclusive cell rectangle covering a w*h screen.
func (v Viewport) VisibleCells(w, h int) (min, max Cell) {
	return v.ToGrid(0, 0), v.ToGrid(float64(w), float64(h))
}

func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
