package model

import (
	"crypto/md5"
	"fmt"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid is a square, bounded board of cells stored in row-major order.
// Its dimension never changes after construction.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates a size×size grid of dead cells. Callers validate size;
// non-positive values are clamped to 1.
func NewGrid(size int) *Grid {
	if size <= 0 {
		size = 1
	}
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the number of rows (and columns) of the grid
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

func (g *Grid) index(row, col int) int { return row*g.size + col }

// Get returns the state of a cell. Positions outside the grid read as Dead.
func (g *Grid) Get(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Dead
	}
	return g.cells[g.index(row, col)]
}

// Set sets a cell; positions outside the grid are ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if g.InBounds(row, col) {
		g.cells[g.index(row, col)] = c
	}
}

// Toggle flips a cell between Dead and Alive.
func (g *Grid) Toggle(row, col int) {
	if g.InBounds(row, col) {
		i := g.index(row, col)
		g.cells[i] = g.cells[i].Toggle()
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.size != o.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// CountNeighbors counts the live cells in the Moore neighborhood of (row, col).
// The grid does not wrap: neighbors past an edge do not exist.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0
	for _, off := range rules.MooreOffsets {
		r, c := row+off[0], col+off[1]
		if !g.InBounds(r, c) {
			continue
		}
		if g.cells[g.index(r, c)] == Alive {
			count++
		}
	}
	return count
}

// NextGenerationInto writes the generation following g into next, which must
// have the same size and must not be g. Only g is read while counting, so
// no newly computed state leaks into the same generation.
func (g *Grid) NextGenerationInto(next *Grid) {
	for row := range g.size {
		for col := range g.size {
			alive := g.cells[g.index(row, col)] == Alive
			next.cells[next.index(row, col)] = CellOf(rules.ApplyConwayRules(g.CountNeighbors(row, col), alive))
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
