package rules

const (
	// BirthNeighbors is the exact live-neighbor count that brings a dead cell to life.
	BirthNeighbors = 3
	// SurviveMin and SurviveMax bound the live-neighbor counts a live cell survives with.
	SurviveMin = 2
	SurviveMax = 3
)

// MooreOffsets lists the (row, col) deltas of the eight cells surrounding a cell.
var MooreOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell is born with exactly three live neighbors. A live cell survives with two
or three live neighbors and dies otherwise, including when it has none.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveMin && neighbors <= SurviveMax
	}
	return neighbors == BirthNeighbors
}
