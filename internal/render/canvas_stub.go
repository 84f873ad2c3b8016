//go:build !ebiten

package render

import (
	"image/color"

	"lifepad/internal/engine"
)

// Canvas is a no-op placeholder for headless builds.
type Canvas struct{}

// NewCanvas returns nil in the headless build.
func NewCanvas(_, _, _ color.RGBA, _ float64) *Canvas { return nil }

// Draw is a no-op in the headless build.
func (c *Canvas) Draw(any, *engine.Simulator, int, int, bool) {}
