package engine

// NextGeneration applies the B3/S23 rule to cur and returns the next
// generation as a fresh set.
//
// Instead of scanning a bounding rectangle, every live cell increments a
// tally on each of its eight neighbours. A coordinate's tally then equals
// its live-neighbour count, and only cells adjacent to at least one live
// cell ever appear as keys, so the cost is proportional to the live count
// rather than the covered area.
func NextGeneration(cur *CellSet) *CellSet {
	tally := make(map[Cell]int, cur.Len()*4)
	cur.Each(func(c Cell) bool {
		for _, d := range neighborhood {
			tally[c.Offset(d[0], d[1])]++
		}
		return true
	})

	next := newCellSetSized(cur.Len())
	for c, n := range tally {
		if n == 3 || (n == 2 && cur.Contains(c)) {
			next.Add(c)
		}
	}
	return next
}
