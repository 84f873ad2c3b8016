// lifepad is an interactive, pannable and zoomable Game of Life canvas
// over an unbounded grid.
//
// Usage:
//
//	lifepad run             - Open the interactive canvas
//	lifepad patterns        - List the built-in seed patterns
//	lifepad bench           - Benchmark the engine headlessly
//
// Global flags:
//
//	--config <path>  - Explicit config file (default: search order)
//	--log <level>    - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lifepad",
	Short: "Conway's Game of Life on an infinite, pannable canvas",
	Long: `lifepad simulates Conway's Game of Life (B3/S23) over an unbounded
grid. Paint cells with the mouse, pan and zoom freely, and watch the
colony evolve at up to 1000 generations per second.

Examples:
  lifepad run
  lifepad run --pattern gosper-gun --rate 30
  lifepad patterns
  lifepad bench --pattern acorn --generations 6000`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			level = log.InfoLevel
		}
		log.SetLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(benchCmd)
}
