package mines

import "strconv"

// Tile is what the player can see of a single cell.
type Tile int8

const (
	Unknown Tile = -1
	Empty   Tile = 0
	// 1 to 8 are revealed cells with that many mined neighbours
	Mine    Tile = 9
	Flagged Tile = 10
)

// TileFromCount maps a neighbour mine count to the tile showing it. Values
// outside of the tile numbering produce [Unknown].
func TileFromCount(n int) Tile {
	switch {
	case 0 <= n && n <= 10:
		return Tile(n)
	default:
		return Unknown
	}
}

// Count returns the number of mined neighbours shown by a revealed safe tile.
func (t Tile) Count() (int, bool) {
	if Empty <= t && t <= 8 {
		return int(t), true
	}
	return 0, false
}

func (t Tile) Revealed() bool {
	return t != Unknown && t != Flagged
}

func (t Tile) String() string {
	switch t {
	case Unknown:
		return " "
	case Mine:
		return "*"
	case Flagged:
		return "X"
	default:
		return strconv.Itoa(int(t))
	}
}
