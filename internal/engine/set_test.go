package engine

import "testing"

func TestCellSetBasics(t *testing.T) {
	s := NewCellSet()
	c := Cell{X: -5, Y: 12}

	if s.Contains(c) {
		t.Fatal("empty set should not contain any cell")
	}
	s.Add(c)
	s.Add(c)
	if !s.Contains(c) {
		t.Fatal("added cell missing")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d after double add, want 1", s.Len())
	}
	s.Remove(c)
	if s.Contains(c) || s.Len() != 0 {
		t.Fatal("cell still present after Remove")
	}
	s.Remove(c) // removing a dead cell is a no-op
}

func TestCellSetClear(t *testing.T) {
	s := setOf(Cell{0, 0}, Cell{1, 1}, Cell{-2, 3})
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len = %d after Clear, want 0", s.Len())
	}
}

func TestCellSetEachStopsEarly(t *testing.T) {
	s := setOf(Cell{0, 0}, Cell{1, 0}, Cell{2, 0})
	visited := 0
	s.Each(func(Cell) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Fatalf("visited %d cells after returning false, want 1", visited)
	}
}

func TestCellSetEachVisitsAll(t *testing.T) {
	cells := []Cell{{0, 0}, {-1, 5}, {7, -9}}
	s := setOf(cells...)
	seen := make(map[Cell]bool)
	s.Each(func(c Cell) bool {
		seen[c] = true
		return true
	})
	if len(seen) != len(cells) {
		t.Fatalf("visited %d distinct cells, want %d", len(seen), len(cells))
	}
	for _, c := range cells {
		if !seen[c] {
			t.Fatalf("cell (%d,%d) not visited", c.X, c.Y)
		}
	}
}
