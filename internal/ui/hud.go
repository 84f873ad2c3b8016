//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifepad/internal/engine"
)

var helpLines = []string{
	"space       play / pause",
	"n           step one generation",
	"c           clear the grid",
	"r           reseed the start pattern",
	"[ / ]       brush size down / up",
	"left/right  simulation rate down / up",
	"left drag   paint, or erase when started on a live cell",
	"right drag  pan",
	"wheel       zoom at cursor",
	"h           toggle this help",
	"q / esc     quit",
}

// HUD draws the status line and, on demand, the key binding overlay.
type HUD struct {
	pixel    *ebiten.Image
	showHelp bool
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &HUD{pixel: px}
}

// Update handles HUD key bindings.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.showHelp = !h.showHelp
	}
}

// Draw paints the status line along the bottom edge and the help overlay
// when toggled on.
func (h *HUD) Draw(screen *ebiten.Image, sim *engine.Simulator) {
	w := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()

	state := "paused"
	if sim.Playing() {
		state = "running"
	}
	status := fmt.Sprintf("gen %d   pop %d   rate %d/s   brush %d   zoom %.1fpx   %s   [h] help",
		sim.Generation(), sim.Population(), sim.Rate(), sim.BrushSize(), sim.View().Scale, state)

	h.panel(screen, 0, float64(sh-20), float64(w), 20, 0.6)
	text.Draw(screen, status, basicfont.Face7x13, 8, sh-6, color.White)

	if h.showHelp {
		h.drawHelp(screen, w, sh)
	}
}

func (h *HUD) drawHelp(screen *ebiten.Image, w, sh int) {
	const lineHeight = 16
	panelW := 420.0
	panelH := float64(len(helpLines)*lineHeight + 24)
	x := (float64(w) - panelW) / 2
	y := (float64(sh) - panelH) / 2

	h.panel(screen, x, y, panelW, panelH, 0.85)
	for i, line := range helpLines {
		text.Draw(screen, line, basicfont.Face7x13, int(x)+16, int(y)+20+i*lineHeight, color.White)
	}
}

func (h *HUD) panel(screen *ebiten.Image, x, y, w, ht, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, ht)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 8, G: 8, B: 10, A: 255})
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(h.pixel, op)
}
