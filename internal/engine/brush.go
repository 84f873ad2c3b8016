package engine

// Brush diameter bounds, in cells.
const (
	MinBrushSize = 1
	MaxBrushSize = 50
)

// ClampBrushSize restricts a requested diameter to the valid range.
func ClampBrushSize(n int) int {
	if n < MinBrushSize {
		return MinBrushSize
	}
	if n > MaxBrushSize {
		return MaxBrushSize
	}
	return n
}

// Footprint calls fn for every cell a brush of the given diameter covers
// when centred on center. Diameter 1 is exactly the center cell; larger
// diameters cover the integer points of the disc, tested as
// 4*(dx²+dy²) <= size² so the radius check stays in integer arithmetic.
func Footprint(center Cell, size int, fn func(Cell)) {
	size = ClampBrushSize(size)
	if size == 1 {
		fn(center)
		return
	}
	r := int64(size / 2)
	limit := int64(size) * int64(size)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if 4*(dx*dx+dy*dy) <= limit {
				fn(center.Offset(dx, dy))
			}
		}
	}
}

// PaintCircle stamps one brush application onto the set: covered cells are
// added when alive is true and removed otherwise. Repainting a cell is a
// no-op, so overlapping stamps are harmless.
func PaintCircle(set *CellSet, center Cell, size int, alive bool) {
	Footprint(center, size, func(c Cell) {
		if alive {
			set.Add(c)
		} else {
			set.Remove(c)
		}
	})
}

// interpolate stamps the brush at every lattice step between two stroke
// samples, walking an integer-error line so coverage has no gaps however
// far apart consecutive pointer events land.
func interpolate(set *CellSet, from, to Cell, size int, alive bool) {
	dx := abs64(to.X - from.X)
	dy := -abs64(to.Y - from.Y)
	sx := int64(1)
	if from.X > to.X {
		sx = -1
	}
	sy := int64(1)
	if from.Y > to.Y {
		sy = -1
	}
	err := dx + dy
	c := from
	for {
		PaintCircle(set, c, size, alive)
		if c == to {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c.X += sx
		}
		if e2 <= dx {
			err += dx
			c.Y += sy
		}
	}
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
