package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	colorDead    = lipgloss.Color("#1f2433")
	colorAlive   = lipgloss.Color("#2ab922")
	colorPreview = lipgloss.Color("#ffffff")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	stoppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Renderer draws grids to the terminal. The cell palette lives here; the
// engine only knows Dead and Alive.
type Renderer struct {
	cellWidth int
	cells     [2]lipgloss.Style
	preview   lipgloss.Style
}

// NewRenderer returns a renderer drawing each cell cellWidth columns wide.
func NewRenderer(cellWidth int) *Renderer {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	return &Renderer{
		cellWidth: cellWidth,
		cells: [2]lipgloss.Style{
			model.Dead:  lipgloss.NewStyle().Background(colorDead),
			model.Alive: lipgloss.NewStyle().Background(colorAlive),
		},
		preview: lipgloss.NewStyle().Background(colorPreview),
	}
}

// CellWidth returns the number of columns one cell occupies.
func (r *Renderer) CellWidth() int { return r.cellWidth }

// Render draws the grid one terminal line per row. When preview is non-nil
// that cell is drawn in the hover colour regardless of its state.
func (r *Renderer) Render(g *model.Grid, preview *Point) string {
	var b strings.Builder
	size := g.Size()
	for row := range size {
		// Adjacent cells sharing a style are rendered as one run.
		runStart, runStyle := 0, r.styleAt(g, preview, row, 0)
		for col := 1; col < size; col++ {
			if s := r.styleAt(g, preview, row, col); s != runStyle {
				b.WriteString(r.run(runStyle, col-runStart))
				runStart, runStyle = col, s
			}
		}
		b.WriteString(r.run(runStyle, size-runStart))
		if row < size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

type styleKey int

const (
	styleDead styleKey = iota
	styleAlive
	stylePreview
)

func (r *Renderer) styleAt(g *model.Grid, preview *Point, row, col int) styleKey {
	if preview != nil && preview.Row == row && preview.Col == col {
		return stylePreview
	}
	if g.Get(row, col) == model.Alive {
		return styleAlive
	}
	return styleDead
}

func (r *Renderer) run(k styleKey, cells int) string {
	text := strings.Repeat(" ", cells*r.cellWidth)
	switch k {
	case stylePreview:
		return r.preview.Render(text)
	case styleAlive:
		return r.cells[model.Alive].Render(text)
	default:
		return r.cells[model.Dead].Render(text)
	}
}

// Status draws the two header lines: counters and run state, then
// performance figures.
func (r *Renderer) Status(generation uint64, population int, state engine.RunState, stats *utils.Stats, now time.Time) string {
	stateText := stoppedStyle.Render("■ " + state.String())
	if state == engine.Running {
		stateText = runningStyle.Render("▶ " + state.String())
	}
	first := fmt.Sprintf("%s  %s %d  %s %d  %s  %s",
		titleStyle.Render("Conway's Game of Life"),
		labelStyle.Render("Gen:"), generation,
		labelStyle.Render("Living:"), population,
		stateText,
		labelStyle.Render(string(stats.Status())))
	second := labelStyle.Render(fmt.Sprintf("%.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime(now).Seconds()))
	return first + "\n" + second
}

// Help lists the key bindings.
func (r *Renderer) Help() string {
	return labelStyle.Render("space play/pause • n step • c clear • r random • g glider • click toggle • q quit")
}
