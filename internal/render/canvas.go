//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"lifepad/internal/engine"
)

// Canvas paints the visible window of the grid: background, grid lines
// when zoomed in far enough to resolve them, live cells, and the brush
// footprint under the cursor.
type Canvas struct {
	pixel *ebiten.Image

	background color.RGBA
	cellColor  color.RGBA
	gridColor  color.RGBA

	gridLineMinScale float64
}

// NewCanvas constructs a canvas with the given palette. Grid lines are
// hidden while the zoom level is below gridLineMinScale pixels per cell.
func NewCanvas(background, cell, grid color.RGBA, gridLineMinScale float64) *Canvas {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &Canvas{
		pixel:            px,
		background:       background,
		cellColor:        cell,
		gridColor:        grid,
		gridLineMinScale: gridLineMinScale,
	}
}

// Draw renders one frame. The cursor position selects the cell under the
// brush preview; showBrush suppresses the preview during pan drags.
func (c *Canvas) Draw(screen *ebiten.Image, sim *engine.Simulator, cursorX, cursorY int, showBrush bool) {
	screen.Fill(c.background)

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	vp := sim.View()

	showGrid := vp.Scale >= c.gridLineMinScale
	if showGrid {
		c.drawGridLines(screen, vp, w, h)
	}

	// Cells are drawn inset by the grid line width so the lattice stays
	// visible between them.
	inset := 0.0
	if showGrid {
		inset = 1.0
	}
	sim.Each(func(cell engine.Cell) bool {
		c.drawCell(screen, vp, cell, w, h, inset, 1)
		return true
	})

	if showBrush {
		center := vp.ToGrid(float64(cursorX), float64(cursorY))
		engine.Footprint(center, sim.BrushSize(), func(cell engine.Cell) {
			c.drawCell(screen, vp, cell, w, h, inset, 0.35)
		})
	}
}

func (c *Canvas) drawCell(screen *ebiten.Image, vp engine.Viewport, cell engine.Cell, w, h int, inset, alpha float64) {
	sx, sy := vp.ToScreen(cell)
	size := vp.Scale - inset
	if size < 1 {
		size = 1
	}
	if sx+size < 0 || sy+size < 0 || sx > float64(w) || sy > float64(h) {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(sx+inset, sy+inset)
	op.ColorScale.ScaleWithColor(c.cellColor)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(c.pixel, op)
}

func (c *Canvas) drawGridLines(screen *ebiten.Image, vp engine.Viewport, w, h int) {
	min, max := vp.VisibleCells(w, h)
	for x := min.X; x <= max.X+1; x++ {
		sx := float64(x)*vp.Scale + vp.OffsetX
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, float64(h))
		op.GeoM.Translate(sx, 0)
		op.ColorScale.ScaleWithColor(c.gridColor)
		screen.DrawImage(c.pixel, op)
	}
	for y := min.Y; y <= max.Y+1; y++ {
		sy := float64(y)*vp.Scale + vp.OffsetY
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(w), 1)
		op.GeoM.Translate(0, sy)
		op.ColorScale.ScaleWithColor(c.gridColor)
		screen.DrawImage(c.pixel, op)
	}
}
