// Package patterns provides the built-in library of seed shapes and
// random soup filling for the simulation grid.
package patterns

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"lifepad/internal/engine"
)

//go:embed patterns.yaml
var builtinYAML []byte

// Pattern is a named seed shape in row notation: 'O' marks a live cell,
// any other rune a dead one. Row 0 is the top of the shape.
type Pattern struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Rows        []string `yaml:"rows"`
}

type library struct {
	Patterns []Pattern `yaml:"patterns"`
}

var builtin []Pattern

func init() {
	ps, err := Parse(builtinYAML)
	if err != nil {
		panic("patterns: embedded library is invalid: " + err.Error())
	}
	builtin = ps
}

// Parse reads a pattern library from YAML and validates it.
func Parse(data []byte) ([]Pattern, error) {
	var lib library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse pattern library: %w", err)
	}
	seen := make(map[string]bool, len(lib.Patterns))
	for _, p := range lib.Patterns {
		if p.Name == "" {
			return nil, fmt.Errorf("pattern with empty name")
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate pattern %q", p.Name)
		}
		seen[p.Name] = true
		if len(p.Rows) == 0 {
			return nil, fmt.Errorf("pattern %q has no rows", p.Name)
		}
	}
	return lib.Patterns, nil
}

// All returns the built-in patterns sorted by name.
func All() []Pattern {
	ps := make([]Pattern, len(builtin))
	copy(ps, builtin)
	sort.Slice(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	return ps
}

// Get looks up a built-in pattern by name.
func Get(name string) (Pattern, bool) {
	for _, p := range builtin {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// Size returns the bounding width and height of the shape in cells.
func (p Pattern) Size() (w, h int) {
	for _, row := range p.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w, len(p.Rows)
}

// Cells returns the live cells of the shape relative to its top-left
// corner.
func (p Pattern) Cells() []engine.Cell {
	var cells []engine.Cell
	for y, row := range p.Rows {
		for x, r := range row {
			if r == 'O' {
				cells = append(cells, engine.Cell{X: int64(x), Y: int64(y)})
			}
		}
	}
	return cells
}

// Stamp adds the shape to the set, centred on origin.
func Stamp(set *engine.CellSet, p Pattern, origin engine.Cell) {
	w, h := p.Size()
	for _, c := range p.Cells() {
		set.Add(c.Offset(origin.X-int64(w/2), origin.Y-int64(h/2)))
	}
}
