// Package engine owns the Game of Life state: the grid, the generation
// counter and the run state, plus the timer-driven animation loop.
package engine

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	DefaultSize     = 80
	DefaultInterval = 50 * time.Millisecond
)

// RunState tells whether continuous animation is active.
type RunState int

const (
	Stopped RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// EventKind identifies the mutation reported to an observer.
type EventKind int

const (
	EventToggled EventKind = iota
	EventAdvanced
	EventStarted
	EventStopped
	EventCleared
	EventSeeded
)

// Event describes a completed mutation. Row and Col are only set for EventToggled.
type Event struct {
	Kind       EventKind
	Generation uint64
	Row, Col   int
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithInterval sets the delay between animation ticks. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithScheduler replaces the wall-clock scheduler used by Start.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.scheduler = s
		}
	}
}

// WithObserver registers a callback run after every mutation. It is called
// without the engine lock held, so it may read engine state.
func WithObserver(fn func(Event)) Option {
	return func(e *Engine) { e.observer = fn }
}

// Engine is safe for concurrent use; every mutation is serialized by one mutex.
type Engine struct {
	mu sync.Mutex

	// size is fixed at construction and read without the lock.
	size int
	// cur is the live generation; nxt is scratch space for the next one.
	cur, nxt   *model.Grid
	generation uint64
	state      RunState

	interval  time.Duration
	scheduler Scheduler
	timer     Timer
	// epoch is bumped on every disarm so a tick that already fired can tell
	// it belongs to a cancelled run.
	epoch uint64

	observer func(Event)
}

// New creates a size×size engine with every cell dead, generation 0 and
// animation stopped.
func New(size int, opts ...Option) (*Engine, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[New] size must be positive, got %d", size)
	}
	e := &Engine{
		size:      size,
		cur:       model.NewGrid(size),
		nxt:       model.NewGrid(size),
		state:     Stopped,
		interval:  DefaultInterval,
		scheduler: WallClock,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Size returns the grid dimension.
func (e *Engine) Size() int { return e.size }

// Interval returns the delay between animation ticks.
func (e *Engine) Interval() time.Duration { return e.interval }

// Toggle flips a single cell. It does not advance the generation counter.
func (e *Engine) Toggle(row, col int) error {
	e.mu.Lock()
	if !e.cur.InBounds(row, col) {
		e.mu.Unlock()
		return outOfBounds("Toggle", row, col, e.size)
	}
	e.cur.Toggle(row, col)
	gen := e.generation
	e.mu.Unlock()

	e.notify(Event{Kind: EventToggled, Generation: gen, Row: row, Col: col})
	return nil
}

// CellState returns the state of one cell.
func (e *Engine) CellState(row, col int) (model.Cell, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.cur.InBounds(row, col) {
		return model.Dead, outOfBounds("CellState", row, col, e.size)
	}
	return e.cur.Get(row, col), nil
}

// NeighborCount returns how many of the up to eight cells around (row, col)
// in g are alive. Cells beyond the grid edge never count.
func NeighborCount(g *model.Grid, row, col int) (int, error) {
	if g == nil {
		return 0, errors.New("[NeighborCount] nil grid")
	}
	if !g.InBounds(row, col) {
		return 0, outOfBounds("NeighborCount", row, col, g.Size())
	}
	return g.CountNeighbors(row, col), nil
}

// AdvanceOnce replaces the grid with its next generation and increments the
// generation counter. The run state is unchanged.
func (e *Engine) AdvanceOnce() {
	e.mu.Lock()
	e.advanceLocked()
	gen := e.generation
	e.mu.Unlock()

	e.notify(Event{Kind: EventAdvanced, Generation: gen})
}

func (e *Engine) advanceLocked() {
	e.cur.NextGenerationInto(e.nxt)
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

// Start begins continuous animation. It is a no-op while already running.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.state == Running {
		e.mu.Unlock()
		return
	}
	e.state = Running
	e.armLocked()
	gen := e.generation
	e.mu.Unlock()

	e.notify(Event{Kind: EventStarted, Generation: gen})
}

// Stop halts continuous animation. No pending tick advances the grid after
// Stop returns. It is a no-op while already stopped.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.state == Stopped {
		e.mu.Unlock()
		return
	}
	e.state = Stopped
	e.disarmLocked()
	gen := e.generation
	e.mu.Unlock()

	e.notify(Event{Kind: EventStopped, Generation: gen})
}

// Clear stops animation, kills every cell and resets the generation counter.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.state = Stopped
	e.disarmLocked()
	e.cur.Clear()
	e.generation = 0
	e.mu.Unlock()

	e.notify(Event{Kind: EventCleared})
}

// Seed lets fn draw onto the live grid, e.g. to load a starting pattern.
// The generation counter and run state are left alone.
func (e *Engine) Seed(fn func(g *model.Grid)) {
	e.mu.Lock()
	fn(e.cur)
	gen := e.generation
	e.mu.Unlock()

	e.notify(Event{Kind: EventSeeded, Generation: gen})
}

// IsRunning reports whether continuous animation is active.
func (e *Engine) IsRunning() bool {
	return e.State() == Running
}

// State returns the current run state.
func (e *Engine) State() RunState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Generation returns the number of generations advanced since the last clear.
func (e *Engine) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cur.CountLivingCells()
}

// Snapshot returns a copy of the current grid that the caller may keep.
func (e *Engine) Snapshot() *model.Grid {
	g, _ := e.Capture()
	return g
}

// Capture returns a copy of the current grid together with the generation
// it belongs to, read atomically.
func (e *Engine) Capture() (*model.Grid, uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cur.Clone(), e.generation
}

// armLocked schedules the next tick. Each tick re-arms only after its
// advance completes, so advances never overlap.
func (e *Engine) armLocked() {
	epoch := e.epoch
	e.timer = e.scheduler.AfterFunc(e.interval, func() { e.tick(epoch) })
}

func (e *Engine) disarmLocked() {
	e.epoch++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine) tick(epoch uint64) {
	e.mu.Lock()
	if e.state != Running || epoch != e.epoch {
		e.mu.Unlock()
		return
	}
	e.advanceLocked()
	e.armLocked()
	gen := e.generation
	e.mu.Unlock()

	e.notify(Event{Kind: EventAdvanced, Generation: gen})
}

func (e *Engine) notify(ev Event) {
	if e.observer != nil {
		e.observer(ev)
	}
}
