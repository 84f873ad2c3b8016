package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifepad/internal/patterns"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the built-in seed patterns",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range patterns.All() {
			w, h := p.Size()
			fmt.Printf("%-12s %3dx%-3d  %s\n", p.Name, w, h, p.Description)
		}
	},
}
