package model

import (
	"math/rand/v2"
	"sort"
)

// AddGlider draws a glider whose 3×3 bounding box starts at (row, col).
func (g *Grid) AddGlider(row, col int) {
	pattern := [][]Cell{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}
	g.stamp(row, col, pattern)
}

// AddBlinker draws a horizontal blinker centered on (row, col).
func (g *Grid) AddBlinker(row, col int) {
	g.Set(row, col-1, Alive)
	g.Set(row, col, Alive)
	g.Set(row, col+1, Alive)
}

// AddBlock draws a 2×2 still life with its top-left corner at (row, col).
func (g *Grid) AddBlock(row, col int) {
	g.stamp(row, col, [][]Cell{{Alive, Alive}, {Alive, Alive}})
}

func (g *Grid) stamp(row, col int, pattern [][]Cell) {
	for dr, line := range pattern {
		for dc, c := range line {
			g.Set(row+dr, col+dc, c)
		}
	}
}

// Randomize sets every cell alive with the given probability. The same seed
// always produces the same grid.
func (g *Grid) Randomize(density float64, seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range g.cells {
		g.cells[i] = CellOf(rng.Float64() < density)
	}
}

// Pattern draws a starting configuration onto a grid.
type Pattern func(g *Grid, density float64, seed int64)

var patterns = map[string]Pattern{
	"empty": func(*Grid, float64, int64) {},
	"glider": func(g *Grid, _ float64, _ int64) {
		g.AddGlider(1, 1)
	},
	"blinker": func(g *Grid, _ float64, _ int64) {
		g.AddBlinker(g.size/2, g.size/2)
	},
	"block": func(g *Grid, _ float64, _ int64) {
		g.AddBlock(g.size/2-1, g.size/2-1)
	},
	"random": func(g *Grid, density float64, seed int64) {
		g.Randomize(density, seed)
	},
	"mixed": func(g *Grid, density float64, seed int64) {
		g.Randomize(density, seed)
		if g.size >= 10 {
			g.AddGlider(1, 1)
			g.AddBlinker(g.size/4, g.size/4)
		}
	},
}

// LookupPattern returns the named starting pattern.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
