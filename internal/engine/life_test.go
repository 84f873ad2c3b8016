package engine

import "testing"

func setOf(cells ...Cell) *CellSet {
	s := NewCellSet()
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

func sameCells(t *testing.T, got *CellSet, want ...Cell) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("live count = %d, want %d", got.Len(), len(want))
	}
	for _, c := range want {
		if !got.Contains(c) {
			t.Fatalf("cell (%d,%d) should be alive", c.X, c.Y)
		}
	}
}

func TestEmptyGridStable(t *testing.T) {
	next := NextGeneration(NewCellSet())
	if next.Len() != 0 {
		t.Fatalf("empty grid produced %d live cells", next.Len())
	}
}

func TestLoneCellDies(t *testing.T) {
	next := NextGeneration(setOf(Cell{X: 7, Y: -3}))
	if next.Len() != 0 {
		t.Fatalf("isolated cell survived: %d live cells", next.Len())
	}
}

func TestBlockStillLife(t *testing.T) {
	block := []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	cur := setOf(block...)
	for i := 0; i < 10; i++ {
		cur = NextGeneration(cur)
		sameCells(t, cur, block...)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	cur := setOf(Cell{0, 0}, Cell{1, 0}, Cell{2, 0})

	cur = NextGeneration(cur)
	sameCells(t, cur, Cell{1, -1}, Cell{1, 0}, Cell{1, 1})

	cur = NextGeneration(cur)
	sameCells(t, cur, Cell{0, 0}, Cell{1, 0}, Cell{2, 0})
}

func TestGliderTranslation(t *testing.T) {
	seed := []Cell{{0, 0}, {1, 0}, {2, 0}, {2, -1}, {1, -2}}
	cur := setOf(seed...)

	for i := 0; i < 4; i++ {
		cur = NextGeneration(cur)
	}

	want := make([]Cell, len(seed))
	for i, c := range seed {
		want[i] = c.Offset(1, 1)
	}
	sameCells(t, cur, want...)
}

func TestBirthRequiresExactlyThreeNeighbors(t *testing.T) {
	// Place n live neighbours around a dead origin, far from anything
	// else, and check whether the origin is born.
	for n := 0; n <= 8; n++ {
		cur := NewCellSet()
		for i := 0; i < n; i++ {
			d := neighborhood[i]
			cur.Add(Cell{X: d[0], Y: d[1]})
		}
		next := NextGeneration(cur)
		born := next.Contains(Cell{})
		if born != (n == 3) {
			t.Fatalf("dead cell with %d neighbours: born=%v", n, born)
		}
	}
}

func TestSurvivalNeedsTwoOrThreeNeighbors(t *testing.T) {
	for n := 0; n <= 8; n++ {
		cur := setOf(Cell{})
		for i := 0; i < n; i++ {
			d := neighborhood[i]
			cur.Add(Cell{X: d[0], Y: d[1]})
		}
		next := NextGeneration(cur)
		alive := next.Contains(Cell{})
		if alive != (n == 2 || n == 3) {
			t.Fatalf("live cell with %d neighbours: alive=%v", n, alive)
		}
	}
}

func TestDistantColoniesEvolveIndependently(t *testing.T) {
	// Two blinkers a billion cells apart must not interact.
	const far = 1_000_000_000
	cur := setOf(
		Cell{0, 0}, Cell{1, 0}, Cell{2, 0},
		Cell{far, far}, Cell{far + 1, far}, Cell{far + 2, far},
	)
	cur = NextGeneration(cur)
	sameCells(t, cur,
		Cell{1, -1}, Cell{1, 0}, Cell{1, 1},
		Cell{far + 1, far - 1}, Cell{far + 1, far}, Cell{far + 1, far + 1},
	)
}
