package ui

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// headerLines is the number of status lines drawn above the grid.
const headerLines = 2

// EngineMsg carries an engine event into the Bubble Tea update loop.
type EngineMsg engine.Event

// Events buffers engine events for the UI. Observe never blocks, so it is
// safe to register as an engine observer even when the mutation originates
// from inside Update; events beyond the buffer are dropped.
type Events chan engine.Event

// NewEvents returns an event buffer of size n.
func NewEvents(n int) Events { return make(Events, n) }

// Observe is an engine observer.
func (ev Events) Observe(e engine.Event) {
	select {
	case ev <- e:
	default:
	}
}

func (ev Events) wait() tea.Cmd {
	return func() tea.Msg { return EngineMsg(<-ev) }
}

// Model is the Bubble Tea model hosting the simulation.
type Model struct {
	eng      *engine.Engine
	ctrl     *Controller
	renderer *Renderer
	stats    *utils.Stats
	events   Events
	cfg      utils.Config

	seed int64
}

// NewModel wires the controller and renderer for eng. events must be the
// buffer registered as eng's observer.
func NewModel(eng *engine.Engine, events Events, stats *utils.Stats, cfg utils.Config) Model {
	renderer := NewRenderer(cfg.CellSize)
	ctrl := NewController(eng, renderer.CellWidth(), 1)
	ctrl.SetOrigin(0, headerLines)
	return Model{
		eng:      eng,
		ctrl:     ctrl,
		renderer: renderer,
		stats:    stats,
		events:   events,
		cfg:      cfg,
		seed:     cfg.Seed,
	}
}

func (m Model) Init() tea.Cmd { return m.events.wait() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case EngineMsg:
		m.observe(engine.Event(msg))
		return m, m.events.wait()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.eng.Stop()
		return m, tea.Quit
	case " ", "p":
		state := m.ctrl.PlayPause()
		log.Printf("play/pause -> %s at generation %d", state, m.eng.Generation())
	case "n", ".":
		m.ctrl.Step()
	case "c":
		m.ctrl.Clear()
		log.Printf("cleared")
	case "r":
		m.seed++
		m.load("random")
	case "g":
		m.load("glider")
	}
	return m, nil
}

func (m *Model) load(name string) {
	p, ok := model.LookupPattern(name)
	if !ok {
		return
	}
	m.ctrl.Load(p, m.cfg.RandomDensity, m.seed)
	log.Printf("loaded pattern %q (seed %d)", name, m.seed)
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Type {
	case tea.MouseLeft:
		if err := m.ctrl.Click(msg.X, msg.Y); err != nil {
			// Clicks on the header or past the grid edge are expected.
			log.Printf("click ignored: %v", err)
		}
	case tea.MouseMotion:
		m.ctrl.Hover(msg.X, msg.Y)
	}
	return m
}

func (m Model) observe(ev engine.Event) {
	switch ev.Kind {
	case engine.EventAdvanced:
		snap, gen := m.eng.Capture()
		if gen != ev.Generation {
			// The grid has moved on; a later event carries the current state.
			return
		}
		m.stats.Update(ev.Generation, snap.CountLivingCells(), snap.Hash(), time.Now())
	case engine.EventCleared:
		m.stats.Reset(time.Now())
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderer.Status(m.eng.Generation(), m.eng.Population(), m.eng.State(), m.stats, time.Now()))
	b.WriteByte('\n')
	b.WriteString(m.renderer.Render(m.eng.Snapshot(), m.ctrl.Preview()))
	b.WriteByte('\n')
	b.WriteString(m.renderer.Help())
	return b.String()
}
