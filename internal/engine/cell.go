package engine

// Cell identifies one lattice position on the unbounded plane. The 64-bit
// axes make coordinate overflow unreachable in practice, so there is no
// wrap or rejection behaviour to define.
type Cell struct {
	X, Y int64
}

// Offset returns the cell displaced by (dx, dy).
func (c Cell) Offset(dx, dy int64) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// neighborhood lists the eight Moore-neighbour offsets.
var neighborhood = [8][2]int64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
