// Package ui turns user input into engine calls and engine state into
// terminal output.
package ui

import (
	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
)

// Point addresses a grid cell.
type Point struct {
	Row, Col int
}

// Controller maps pointer positions and commands onto an engine. Positions
// are in host surface units (pixels, terminal cells); each grid cell spans
// cellW×cellH of them, starting at the origin.
type Controller struct {
	eng              *engine.Engine
	cellW, cellH     int
	originX, originY int

	preview *Point
}

// NewController returns a controller with fixed scale factors. Non-positive
// factors are treated as 1.
func NewController(eng *engine.Engine, cellW, cellH int) *Controller {
	return &Controller{eng: eng, cellW: max(cellW, 1), cellH: max(cellH, 1)}
}

// SetOrigin moves the top-left corner of the grid on the host surface.
func (c *Controller) SetOrigin(x, y int) {
	c.originX, c.originY = x, y
}

// CellAt converts a surface position into a cell and reports whether it
// lies on the grid.
func (c *Controller) CellAt(x, y int) (Point, bool) {
	p := Point{
		Row: floorDiv(y-c.originY, c.cellH),
		Col: floorDiv(x-c.originX, c.cellW),
	}
	size := c.eng.Size()
	return p, p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Click toggles the cell under the pointer. Positions off the grid return
// engine.ErrOutOfBounds.
func (c *Controller) Click(x, y int) error {
	p, _ := c.CellAt(x, y)
	return c.eng.Toggle(p.Row, p.Col)
}

// Hover moves the preview overlay to the cell under the pointer, or hides it
// when the pointer is off the grid.
func (c *Controller) Hover(x, y int) {
	if p, ok := c.CellAt(x, y); ok {
		c.preview = &p
		return
	}
	c.preview = nil
}

// Leave hides the preview overlay.
func (c *Controller) Leave() { c.preview = nil }

// Preview returns the hovered cell, or nil.
func (c *Controller) Preview() *Point {
	if c.preview == nil {
		return nil
	}
	p := *c.preview
	return &p
}

// Step halts any running animation and advances exactly one generation.
func (c *Controller) Step() {
	c.preview = nil
	c.eng.Stop()
	c.eng.AdvanceOnce()
}

// PlayPause starts a stopped engine or stops a running one and returns the
// resulting state.
func (c *Controller) PlayPause() engine.RunState {
	if c.eng.IsRunning() {
		c.eng.Stop()
		return engine.Stopped
	}
	c.preview = nil
	c.eng.Start()
	return engine.Running
}

// Clear stops the engine and kills every cell.
func (c *Controller) Clear() {
	c.preview = nil
	c.eng.Clear()
}

// Load clears the engine and draws a pattern onto the empty grid.
func (c *Controller) Load(p model.Pattern, density float64, seed int64) {
	c.Clear()
	c.eng.Seed(func(g *model.Grid) { p(g, density, seed) })
}
