package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"lifepad/internal/app"
	"lifepad/internal/config"
)

var (
	flagPattern string
	flagRate    int
	flagWidth   int
	flagHeight  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive canvas",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("pattern") {
			cfg.Sim.Pattern = flagPattern
		}
		if cmd.Flags().Changed("rate") {
			cfg.Sim.Rate = flagRate
		}
		if cmd.Flags().Changed("width") {
			cfg.Window.Width = flagWidth
		}
		if cmd.Flags().Changed("height") {
			cfg.Window.Height = flagHeight
		}
		cfg.Normalize()

		log.Debug("starting canvas",
			"pattern", cfg.Sim.Pattern,
			"rate", cfg.Sim.Rate,
			"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))
		return app.Run(cfg)
	},
}

func init() {
	runCmd.Flags().StringVar(&flagPattern, "pattern", "", "Seed pattern name (see 'lifepad patterns')")
	runCmd.Flags().IntVar(&flagRate, "rate", 0, "Generations per second")
	runCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width in pixels")
	runCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height in pixels")
}
