package model

// Cell is the binary state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Alive reports whether the cell is live.
func (c Cell) Alive() bool { return c == Alive }

// Toggle returns the opposite state.
func (c Cell) Toggle() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// CellOf converts a boolean liveness into a Cell.
func CellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}
