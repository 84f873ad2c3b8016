package engine

// CellSet is the sparse set of live cells. It is the entire simulation
// state: a coordinate is in the set if and only if that cell is alive in
// the current generation. Construct with NewCellSet.
type CellSet struct {
	cells map[Cell]struct{}
}

// NewCellSet returns an empty live-cell set.
func NewCellSet() *CellSet {
	return &CellSet{cells: make(map[Cell]struct{})}
}

func newCellSetSized(n int) *CellSet {
	return &CellSet{cells: make(map[Cell]struct{}, n)}
}

// Contains reports whether the cell is alive.
func (s *CellSet) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Add marks the cell alive.
func (s *CellSet) Add(c Cell) {
	s.cells[c] = struct{}{}
}

// Remove marks the cell dead.
func (s *CellSet) Remove(c Cell) {
	delete(s.cells, c)
}

// Clear removes every live cell.
func (s *CellSet) Clear() {
	clear(s.cells)
}

// Len returns the number of live cells.
func (s *CellSet) Len() int {
	return len(s.cells)
}

// Each calls fn for every live cell in unspecified order until fn returns
// false. The set must not be mutated during iteration.
func (s *CellSet) Each(fn func(Cell) bool) {
	for c := range s.cells {
		if !fn(c) {
			return
		}
	}
}
