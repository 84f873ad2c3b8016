package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"lifepad/internal/engine"
	"lifepad/internal/patterns"
)

var (
	flagBenchPattern     string
	flagBenchSoup        int64
	flagBenchDensity     float64
	flagBenchGenerations int
	flagBenchSeed        int64
)

// benchCmd runs the transition engine without a display, for profiling
// and regression timing. It needs no build tag.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the engine headlessly",
	RunE: func(cmd *cobra.Command, args []string) error {
		cells := engine.NewCellSet()
		if flagBenchSoup > 0 {
			half := flagBenchSoup / 2
			patterns.Soup(cells,
				engine.Cell{X: -half, Y: -half},
				engine.Cell{X: flagBenchSoup - half - 1, Y: flagBenchSoup - half - 1},
				flagBenchDensity, flagBenchSeed)
		} else {
			p, ok := patterns.Get(flagBenchPattern)
			if !ok {
				return fmt.Errorf("unknown pattern %q", flagBenchPattern)
			}
			patterns.Stamp(cells, p, engine.Cell{})
		}

		log.Info("bench start",
			"start_population", cells.Len(),
			"generations", flagBenchGenerations)

		var peak int
		start := time.Now()
		for range flagBenchGenerations {
			cells = engine.NextGeneration(cells)
			if cells.Len() > peak {
				peak = cells.Len()
			}
		}
		elapsed := time.Since(start)

		perSec := float64(flagBenchGenerations) / elapsed.Seconds()
		log.Info("bench complete",
			"elapsed", elapsed.Round(time.Millisecond),
			"generations_per_sec", fmt.Sprintf("%.0f", perSec),
			"final_population", cells.Len(),
			"peak_population", peak)
		return nil
	},
}

func init() {
	benchCmd.Flags().StringVar(&flagBenchPattern, "pattern", "acorn", "Seed pattern name")
	benchCmd.Flags().Int64Var(&flagBenchSoup, "soup", 0, "Seed a random soup of this side length instead of a pattern")
	benchCmd.Flags().Float64Var(&flagBenchDensity, "density", 0.33, "Soup fill density in [0,1]")
	benchCmd.Flags().IntVar(&flagBenchGenerations, "generations", 1000, "Generations to run")
	benchCmd.Flags().Int64Var(&flagBenchSeed, "seed", 42, "Soup RNG seed")
}
