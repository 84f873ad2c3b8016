package patterns

import (
	"math/rand/v2"

	"lifepad/internal/engine"
)

// Soup fills the inclusive rectangle from min to max with random live
// cells at the given density in [0, 1]. The same seed always produces the
// same soup.
func Soup(set *engine.CellSet, min, max engine.Cell, density float64, seed int64) {
	if density <= 0 || min.X > max.X || min.Y > max.Y {
		return
	}
	if density > 1 {
		density = 1
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			if rng.Float64() < density {
				set.Add(engine.Cell{X: x, Y: y})
			}
		}
	}
}
