package engine

import "testing"

func TestClampBrushSize(t *testing.T) {
	cases := [][2]int{{-5, 1}, {0, 1}, {1, 1}, {25, 25}, {50, 50}, {999, 50}}
	for _, c := range cases {
		if got := ClampBrushSize(c[0]); got != c[1] {
			t.Fatalf("ClampBrushSize(%d) = %d, want %d", c[0], got, c[1])
		}
	}
}

func TestBrushSizeOnePaintsSingleCell(t *testing.T) {
	s := NewCellSet()
	PaintCircle(s, Cell{X: 3, Y: -4}, 1, true)
	sameCells(t, s, Cell{X: 3, Y: -4})
}

func TestBrushDiscMembership(t *testing.T) {
	s := NewCellSet()
	PaintCircle(s, Cell{}, 5, true)

	// Radius 2.5: the axis extremes are in, the bounding-square corners
	// are out (2²+2² = 8 > 6.25).
	for _, c := range []Cell{{0, 0}, {2, 0}, {-2, 0}, {0, 2}, {0, -2}, {1, 1}, {-1, 2}} {
		if !s.Contains(c) {
			t.Fatalf("cell (%d,%d) should be inside a size-5 disc", c.X, c.Y)
		}
	}
	for _, c := range []Cell{{2, 2}, {-2, 2}, {2, -2}, {-2, -2}, {3, 0}} {
		if s.Contains(c) {
			t.Fatalf("cell (%d,%d) should be outside a size-5 disc", c.X, c.Y)
		}
	}
}

func TestPaintCircleErases(t *testing.T) {
	s := NewCellSet()
	PaintCircle(s, Cell{}, 5, true)
	PaintCircle(s, Cell{}, 5, false)
	if s.Len() != 0 {
		t.Fatalf("%d cells remain after erasing the painted disc", s.Len())
	}
}

func TestPaintCircleIdempotent(t *testing.T) {
	s := NewCellSet()
	PaintCircle(s, Cell{}, 7, true)
	n := s.Len()
	PaintCircle(s, Cell{}, 7, true)
	if s.Len() != n {
		t.Fatalf("repainting changed live count from %d to %d", n, s.Len())
	}
}

// eightConnected reports whether every painted cell is reachable from
// start through the painted set using Moore-neighbour moves.
func eightConnected(s *CellSet, start Cell) bool {
	seen := map[Cell]bool{start: true}
	frontier := []Cell{start}
	for len(frontier) > 0 {
		c := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, d := range neighborhood {
			n := c.Offset(d[0], d[1])
			if s.Contains(n) && !seen[n] {
				seen[n] = true
				frontier = append(frontier, n)
			}
		}
	}
	return len(seen) == s.Len()
}

func TestStrokeGapFreedom(t *testing.T) {
	spans := []struct {
		from, to Cell
	}{
		{Cell{0, 0}, Cell{0, 0}},
		{Cell{0, 0}, Cell{1, 1}},
		{Cell{0, 0}, Cell{400, 3}},     // shallow
		{Cell{0, 0}, Cell{2, -351}},    // steep
		{Cell{-100, 80}, Cell{77, -9}}, // crossing zero
		{Cell{5, 5}, Cell{-200, -200}}, // diagonal, backwards
	}
	for _, span := range spans {
		for _, size := range []int{1, 2, 6} {
			s := NewCellSet()
			interpolate(s, span.from, span.to, size, true)
			if !s.Contains(span.from) && size == 1 {
				t.Fatalf("stroke (%v)->(%v) missing its start", span.from, span.to)
			}
			if !eightConnected(s, span.from) {
				t.Fatalf("stroke (%v)->(%v) size %d left a gap", span.from, span.to, size)
			}
		}
	}
}

func TestStrokeEraseMode(t *testing.T) {
	s := NewCellSet()
	for x := int64(-10); x <= 10; x++ {
		for y := int64(-2); y <= 2; y++ {
			s.Add(Cell{X: x, Y: y})
		}
	}
	interpolate(s, Cell{X: -10, Y: 0}, Cell{X: 10, Y: 0}, 1, false)
	for x := int64(-10); x <= 10; x++ {
		if s.Contains(Cell{X: x, Y: 0}) {
			t.Fatalf("cell (%d,0) survived an erasing stroke", x)
		}
		if !s.Contains(Cell{X: x, Y: 1}) || !s.Contains(Cell{X: x, Y: -1}) {
			t.Fatalf("erasing stroke leaked outside its row at x=%d", x)
		}
	}
}
