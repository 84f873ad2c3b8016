//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifepad/internal/config"
	"lifepad/internal/engine"
	"lifepad/internal/patterns"
	"lifepad/internal/render"
	"lifepad/internal/ui"
)

// rateMenu is the fixed set of selectable generations-per-second targets.
var rateMenu = []int{1, 2, 5, 10, 15, 30, 60, 120, 250, 500, 1000}

// Game adapts the simulator to the ebiten.Game interface: it translates
// input events into the engine's event surface and delegates drawing to
// the canvas and HUD.
type Game struct {
	sim    *engine.Simulator
	canvas *render.Canvas
	hud    *ui.HUD

	seed    patterns.Pattern
	hasSeed bool
	rateIdx int
	width   int
	height  int
}

// New constructs a Game from the resolved configuration.
func New(cfg config.Config) (*Game, error) {
	background, err := config.ParseHexColor(cfg.Display.Background)
	if err != nil {
		return nil, err
	}
	cellColor, err := config.ParseHexColor(cfg.Display.CellColor)
	if err != nil {
		return nil, err
	}
	gridColor, err := config.ParseHexColor(cfg.Display.GridColor)
	if err != nil {
		return nil, err
	}

	sim := engine.NewSimulator()
	sim.SetRate(cfg.Sim.Rate)
	sim.SetBrushSize(cfg.Brush.Size)
	sim.SetScale(cfg.Display.Scale)
	sim.Center(cfg.Window.Width, cfg.Window.Height)
	sim.SetPlaying(cfg.Sim.Autoplay)

	g := &Game{
		sim:     sim,
		canvas:  render.NewCanvas(background, cellColor, gridColor, cfg.Display.GridLineMinScale),
		hud:     ui.NewHUD(),
		rateIdx: nearestRate(sim.Rate()),
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}

	if cfg.Sim.Pattern != "" {
		p, ok := patterns.Get(cfg.Sim.Pattern)
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q", cfg.Sim.Pattern)
		}
		g.seed = p
		g.hasSeed = true
		g.reseed()
	}
	return g, nil
}

func (g *Game) reseed() {
	g.sim.ClearAll()
	if g.hasSeed {
		patterns.Stamp(g.sim.Cells(), g.seed, engine.Cell{})
	}
}

// Update handles one frame of input and advances the simulation clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePlaying()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.ClearAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.sim.SetBrushSize(g.sim.BrushSize() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.sim.SetBrushSize(g.sim.BrushSize() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && g.rateIdx > 0 {
		g.rateIdx--
		g.sim.SetRate(rateMenu[g.rateIdx])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && g.rateIdx < len(rateMenu)-1 {
		g.rateIdx++
		g.sim.SetRate(rateMenu[g.rateIdx])
	}

	g.pointerInput()
	g.hud.Update()
	g.sim.OnFrame(time.Now())
	return nil
}

func (g *Game) pointerInput() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sim.PointerDown(x, y, engine.ButtonDraw)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		g.sim.PointerDown(x, y, engine.ButtonPan)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		g.sim.PointerMove(x, y)
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		g.sim.PointerUp()
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.sim.Wheel(x, y, wy)
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	cx, cy := ebiten.CursorPosition()
	inWindow := cx >= 0 && cy >= 0 && cx < g.width && cy < g.height
	showBrush := inWindow && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) &&
		!ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	g.canvas.Draw(screen, g.sim, cx, cy, showBrush)
	g.hud.Draw(screen, g.sim)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and drives the game loop until quit.
func Run(cfg config.Config) error {
	game, err := New(cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func nearestRate(rate int) int {
	best := 0
	for i, r := range rateMenu {
		if abs(r-rate) < abs(rateMenu[best]-rate) {
			best = i
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
