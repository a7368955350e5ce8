package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// heldTimer never fires on its own; tests drive the engine explicitly.
type heldTimer struct{ f func() }

func (*heldTimer) Stop() bool { return true }

func newEngine(t *testing.T, size int, opts ...engine.Option) *engine.Engine {
	t.Helper()
	held := engine.SchedulerFunc(func(_ time.Duration, f func()) engine.Timer { return &heldTimer{f: f} })
	e, err := engine.New(size, append([]engine.Option{engine.WithScheduler(held)}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestControllerCellAt(t *testing.T) {
	c := NewController(newEngine(t, 10), 5, 5)
	tests := []struct {
		x, y   int
		want   Point
		onGrid bool
	}{
		{0, 0, Point{0, 0}, true},
		{4, 4, Point{0, 0}, true},
		{5, 0, Point{0, 1}, true},
		{12, 27, Point{5, 2}, true},
		{49, 49, Point{9, 9}, true},
		{50, 0, Point{0, 10}, false},
		{-1, 0, Point{0, -1}, false},
		{0, -3, Point{-1, 0}, false},
	}
	for _, tt := range tests {
		got, ok := c.CellAt(tt.x, tt.y)
		if got != tt.want || ok != tt.onGrid {
			t.Fatalf("CellAt(%d,%d) = %v,%v; want %v,%v", tt.x, tt.y, got, ok, tt.want, tt.onGrid)
		}
	}
}

func TestControllerClick(t *testing.T) {
	eng := newEngine(t, 10)
	c := NewController(eng, 2, 1)
	c.SetOrigin(0, 2)

	if err := c.Click(7, 5); err != nil {
		t.Fatal(err)
	}
	if cell, _ := eng.CellState(3, 3); cell != model.Alive {
		t.Fatal("click should toggle the cell under the pointer")
	}
	if err := c.Click(7, 0); !errors.Is(err, engine.ErrOutOfBounds) {
		t.Fatalf("click on header err = %v, want ErrOutOfBounds", err)
	}
	if err := c.Click(20, 5); !errors.Is(err, engine.ErrOutOfBounds) {
		t.Fatalf("click past right edge err = %v, want ErrOutOfBounds", err)
	}
	if eng.Population() != 1 || eng.Generation() != 0 {
		t.Fatal("clicks must only toggle, never advance")
	}
}

func TestControllerHover(t *testing.T) {
	eng := newEngine(t, 4)
	c := NewController(eng, 1, 1)
	c.Hover(2, 1)
	if p := c.Preview(); p == nil || *p != (Point{1, 2}) {
		t.Fatalf("preview = %v, want {1 2}", p)
	}
	c.Hover(9, 9)
	if c.Preview() != nil {
		t.Fatal("preview must hide off the grid")
	}
	c.Hover(0, 0)
	c.Leave()
	if c.Preview() != nil {
		t.Fatal("Leave must hide the preview")
	}
	if eng.Population() != 0 {
		t.Fatal("hover must never change engine state")
	}
}

func TestControllerPlayPauseStepClear(t *testing.T) {
	eng := newEngine(t, 6)
	c := NewController(eng, 1, 1)
	blinker, _ := model.LookupPattern("blinker")
	c.Load(blinker, 0, 0)

	if c.PlayPause() != engine.Running || !eng.IsRunning() {
		t.Fatal("first play/pause should start")
	}
	c.Step()
	if eng.IsRunning() {
		t.Fatal("step should halt the animation")
	}
	if eng.Generation() != 1 {
		t.Fatalf("generation = %d after step, want 1", eng.Generation())
	}
	if c.PlayPause() != engine.Running {
		t.Fatal("play/pause should restart")
	}
	if c.PlayPause() != engine.Stopped {
		t.Fatal("play/pause should stop")
	}

	c.Hover(1, 1)
	c.Clear()
	if eng.Generation() != 0 || eng.Population() != 0 || eng.IsRunning() {
		t.Fatal("clear must reset the engine")
	}
	if c.Preview() != nil {
		t.Fatal("clear must hide the preview")
	}
}

func TestRendererDimensions(t *testing.T) {
	r := NewRenderer(2)
	g := model.NewGrid(5)
	g.AddBlinker(2, 2)
	out := r.Render(g, &Point{0, 0})
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("rendered %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 10 {
			t.Fatalf("line %d is %d columns wide, want 10", i, w)
		}
	}
}

func TestRendererStyles(t *testing.T) {
	r := NewRenderer(1)
	g := model.NewGrid(3)
	g.Set(1, 1, model.Alive)
	preview := &Point{1, 1}

	if r.styleAt(g, nil, 1, 1) != styleAlive {
		t.Fatal("live cell should use the alive style")
	}
	if r.styleAt(g, nil, 0, 0) != styleDead {
		t.Fatal("dead cell should use the dead style")
	}
	if r.styleAt(g, preview, 1, 1) != stylePreview {
		t.Fatal("hovered cell should use the preview style")
	}
}

func TestRendererStatus(t *testing.T) {
	r := NewRenderer(1)
	out := r.Status(12, 7, engine.Running, utils.NewStats(), time.Now())
	for _, want := range []string{"Gen:", "12", "Living:", "7", "running"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status %q missing %q", out, want)
		}
	}
}

func TestEventsNeverBlock(t *testing.T) {
	ev := NewEvents(1)
	ev.Observe(engine.Event{Kind: engine.EventAdvanced, Generation: 1})
	ev.Observe(engine.Event{Kind: engine.EventAdvanced, Generation: 2})
	if got := (<-ev).Generation; got != 1 {
		t.Fatalf("buffered generation = %d, want 1", got)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelKeysAndMouse(t *testing.T) {
	events := NewEvents(64)
	eng := newEngine(t, 8, engine.WithObserver(events.Observe))
	cfg := utils.DefaultConfig()
	cfg.Size = 8
	m := NewModel(eng, events, utils.NewStats(), cfg)

	// Column 5 at two columns per cell is col 2; line 3 under a two-line header is row 1.
	next, _ := m.Update(tea.MouseMsg{X: 5, Y: 3, Type: tea.MouseLeft})
	m = next.(Model)
	if cell, _ := eng.CellState(1, 2); cell != model.Alive {
		t.Fatal("left click should toggle the cell under the pointer")
	}

	next, _ = m.Update(runes(" "))
	m = next.(Model)
	if !eng.IsRunning() {
		t.Fatal("space should start the animation")
	}

	next, _ = m.Update(runes("n"))
	m = next.(Model)
	if eng.IsRunning() || eng.Generation() != 1 {
		t.Fatal("n should stop and step once")
	}

	next, _ = m.Update(runes("g"))
	m = next.(Model)
	if eng.Population() != 5 || eng.Generation() != 0 {
		t.Fatalf("g should load a glider on a cleared grid; population %d", eng.Population())
	}

	next, _ = m.Update(runes("c"))
	m = next.(Model)
	if eng.Population() != 0 {
		t.Fatal("c should clear")
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should return tea.Quit")
	}
}

func TestModelTracksAdvances(t *testing.T) {
	events := NewEvents(64)
	eng := newEngine(t, 6, engine.WithObserver(events.Observe))
	stats := utils.NewStats()
	m := NewModel(eng, events, stats, utils.DefaultConfig())
	eng.Seed(func(g *model.Grid) { g.AddBlock(2, 2) })
	eng.AdvanceOnce()

	var msg EngineMsg
	for msg.Kind != engine.EventAdvanced {
		msg = m.Init()().(EngineMsg)
	}
	next, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("model must keep listening for engine events")
	}
	if stats.TotalGenerations != 1 || stats.Population != 4 {
		t.Fatalf("stats not updated: %+v", stats)
	}
	if !strings.Contains(next.View(), "Gen:") {
		t.Fatal("view should include the status header")
	}
}

func TestModelSkipsStaleAdvances(t *testing.T) {
	events := NewEvents(64)
	eng := newEngine(t, 12, engine.WithObserver(events.Observe))
	stats := utils.NewStats()
	m := NewModel(eng, events, stats, utils.DefaultConfig())
	eng.Seed(func(g *model.Grid) { g.AddGlider(1, 1) })
	for range 3 {
		eng.AdvanceOnce()
	}

	// Drain the backlog only after the engine has moved three generations on.
	var next tea.Model = m
	for drained := 0; drained < 3; {
		msg := m.Init()().(EngineMsg)
		if msg.Kind != engine.EventAdvanced {
			continue
		}
		next, _ = next.Update(msg)
		drained++
	}
	if stats.TotalGenerations != 3 {
		t.Fatalf("stats recorded generation %d, want 3", stats.TotalGenerations)
	}
	if stats.Status() != utils.StatusActive {
		t.Fatalf("a moving glider reported %s", stats.Status())
	}
}
