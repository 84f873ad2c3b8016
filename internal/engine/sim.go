package engine

import (
	"math"
	"time"
)

// Button identifies which role a pointer gesture plays.
type Button int

const (
	// ButtonDraw starts a paint/erase stroke.
	ButtonDraw Button = iota
	// ButtonPan starts a viewport drag.
	ButtonPan
)

// wheelNotchFactor is the zoom applied per wheel notch.
const wheelNotchFactor = 1.08

// Simulator owns the whole simulation state: the live-cell set, the
// viewport and the transient gesture state. All methods must be called
// from the single thread that drives frames and input; ticks and edits
// then never interleave below operation granularity.
type Simulator struct {
	cells *CellSet
	view  Viewport
	pace  *pacer

	playing    bool
	rate       int
	generation uint64

	brushSize int

	stroking   bool
	strokeLive bool // true while the current stroke paints live cells
	lastStroke Cell

	panning bool
	lastX   float64
	lastY   float64
}

// NewSimulator returns a paused simulator with an empty grid, default zoom
// and a 1-cell brush.
func NewSimulator() *Simulator {
	const defaultRate = 10
	return &Simulator{
		cells:     NewCellSet(),
		view:      NewViewport(),
		pace:      newPacer(defaultRate),
		rate:      defaultRate,
		brushSize: 1,
	}
}

// Cells exposes the live-cell set. Callers may seed it directly; the next
// render and the next generation observe every mutation immediately.
func (s *Simulator) Cells() *CellSet { return s.cells }

// Each iterates the live cells, for rendering.
func (s *Simulator) Each(fn func(Cell) bool) { s.cells.Each(fn) }

// Population returns the current number of live cells.
func (s *Simulator) Population() int { return s.cells.Len() }

// Generation returns how many transitions have been applied since the
// last clear.
func (s *Simulator) Generation() uint64 { return s.generation }

// View returns a copy of the current viewport.
func (s *Simulator) View() Viewport { return s.view }

// SetScale sets the zoom level directly, clamped.
func (s *Simulator) SetScale(scale float64) { s.view.SetScale(scale) }

// Center positions the grid origin at the center of a w*h screen.
func (s *Simulator) Center(w, h int) { s.view.Center(w, h) }

// OnFrame advances the simulation by however many generations are due at
// time now. Called once per display refresh; while paused it only keeps
// the pacer in sync so resuming does not burst.
func (s *Simulator) OnFrame(now time.Time) {
	if !s.playing {
		s.pace.Sync(now)
		return
	}
	for range s.pace.Steps(now) {
		s.step()
	}
}

// StepOnce advances exactly one generation, regardless of play state.
func (s *Simulator) StepOnce() { s.step() }

func (s *Simulator) step() {
	s.cells = NextGeneration(s.cells)
	s.generation++
}

// SetPlaying pauses or resumes the generation clock. Rendering, panning
// and zooming are unaffected.
func (s *Simulator) SetPlaying(playing bool) { s.playing = playing }

// Playing reports whether the generation clock is running.
func (s *Simulator) Playing() bool { return s.playing }

// TogglePlaying flips the play state.
func (s *Simulator) TogglePlaying() { s.playing = !s.playing }

// SetRate sets the target generations per second, clamped.
func (s *Simulator) SetRate(rate int) {
	s.rate = ClampRate(rate)
	s.pace.SetRate(s.rate)
}

// Rate returns the target generations per second.
func (s *Simulator) Rate() int { return s.rate }

// ClearAll empties the grid and resets the generation counter.
func (s *Simulator) ClearAll() {
	s.cells.Clear()
	s.generation = 0
}

// SetBrushSize sets the brush diameter in cells, clamped.
func (s *Simulator) SetBrushSize(n int) { s.brushSize = ClampBrushSize(n) }

// BrushSize returns the brush diameter in cells.
func (s *Simulator) BrushSize() int { return s.brushSize }

// PointerDown begins a gesture. ButtonDraw starts a stroke whose mode is
// decided once, from the starting cell: a stroke that begins on a live
// cell erases for its entire duration, otherwise it paints. ButtonPan
// starts a viewport drag.
func (s *Simulator) PointerDown(x, y float64, b Button) {
	switch b {
	case ButtonPan:
		s.panning = true
		s.lastX, s.lastY = x, y
	case ButtonDraw:
		c := s.view.ToGrid(x, y)
		s.stroking = true
		s.strokeLive = !s.cells.Contains(c)
		s.lastStroke = c
		PaintCircle(s.cells, c, s.brushSize, s.strokeLive)
	}
}

// PointerMove continues the active gesture, if any. Draw strokes are
// interpolated from the previous sample so fast pointer movement leaves
// no gaps.
func (s *Simulator) PointerMove(x, y float64) {
	if s.panning {
		s.view.Pan(x-s.lastX, y-s.lastY)
		s.lastX, s.lastY = x, y
		return
	}
	if s.stroking {
		c := s.view.ToGrid(x, y)
		if c == s.lastStroke {
			return
		}
		interpolate(s.cells, s.lastStroke, c, s.brushSize, s.strokeLive)
		s.lastStroke = c
	}
}

// PointerUp ends the active gesture. The next stroke decides its own mode.
func (s *Simulator) PointerUp() {
	s.stroking = false
	s.panning = false
}

// Wheel zooms by a fixed factor per notch, anchored at the cursor so the
// cell under it stays put.
func (s *Simulator) Wheel(x, y, notches float64) {
	if notches == 0 {
		return
	}
	s.view.ZoomAt(x, y, math.Pow(wheelNotchFactor, notches))
}
