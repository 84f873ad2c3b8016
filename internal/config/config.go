// Package config loads lifepad settings from YAML with a custom-path,
// user-directory, working-directory, embedded-default search order.
package config

import "lifepad/internal/engine"

// Config holds all user-tunable settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Sim     SimConfig     `yaml:"simulation"`
	Brush   BrushConfig   `yaml:"brush"`
	Display DisplayConfig `yaml:"display"`
}

// WindowConfig controls the application window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// SimConfig controls the simulation clock and the starting state.
type SimConfig struct {
	Rate     int    `yaml:"rate"`     // generations per second
	Pattern  string `yaml:"pattern"`  // seed pattern name, empty for a blank grid
	Autoplay bool   `yaml:"autoplay"` // start running instead of paused
}

// BrushConfig controls the paint brush.
type BrushConfig struct {
	Size int `yaml:"size"` // diameter in cells
}

// DisplayConfig controls colors and zoom presentation. Colors are
// "#rrggbb" hex strings.
type DisplayConfig struct {
	Background       string  `yaml:"background"`
	CellColor        string  `yaml:"cell_color"`
	GridColor        string  `yaml:"grid_color"`
	Scale            float64 `yaml:"scale"`               // initial pixels per cell
	GridLineMinScale float64 `yaml:"grid_line_min_scale"` // hide grid lines when zoomed out past this
}

// Normalize clamps numeric fields to the ranges the engine accepts and
// fills in zero values. Returns the receiver for chaining.
func (c *Config) Normalize() *Config {
	if c.Window.Width <= 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 800
	}
	if c.Window.Title == "" {
		c.Window.Title = "lifepad"
	}
	c.Sim.Rate = engine.ClampRate(c.Sim.Rate)
	c.Brush.Size = engine.ClampBrushSize(c.Brush.Size)
	if c.Display.Scale < engine.MinScale || c.Display.Scale > engine.MaxScale {
		c.Display.Scale = engine.DefaultScale
	}
	if c.Display.GridLineMinScale <= 0 {
		c.Display.GridLineMinScale = 6
	}
	return c
}
