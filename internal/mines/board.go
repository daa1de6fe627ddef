package mines

import (
	"fmt"
	"strings"
)

// Board holds what the player knows about every cell. It has no idea where
// the mines are.
type Board struct {
	height, length int
	tiles          []Tile
}

func NewBoard(height, length int) *Board {
	b := &Board{
		height: height,
		length: length,
		tiles:  make([]Tile, height*length),
	}
	b.Clear()
	return b
}

func (b *Board) Dimensions() (height, length int) {
	return b.height, b.length
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.height && 0 <= col && col < b.length
}

func (b *Board) Clear() {
	for i := range b.tiles {
		b.tiles[i] = Unknown
	}
}

// Get and Set expect row and col to be in bounds.
func (b *Board) Get(row, col int) Tile {
	return b.tiles[row*b.length+col]
}

func (b *Board) Set(row, col int, t Tile) {
	b.tiles[row*b.length+col] = t
}

// Count returns the number of cells currently showing t.
func (b *Board) Count(t Tile) (n int) {
	for _, tile := range b.tiles {
		if tile == t {
			n++
		}
	}
	return
}

// Snapshot copies the board into a fresh grid indexed [row][col].
func (b *Board) Snapshot() [][]Tile {
	grid := make([][]Tile, b.height)
	for row := range b.height {
		grid[row] = make([]Tile, b.length)
		copy(grid[row], b.tiles[row*b.length:(row+1)*b.length])
	}
	return grid
}

func (b *Board) String() string {
	var sb strings.Builder
	border := strings.Repeat("-", b.length)
	fmt.Fprintln(&sb, border)
	for row := range b.height {
		sb.WriteString("|")
		for col := range b.length {
			sb.WriteString(b.Get(row, col).String())
		}
		sb.WriteString("|\n")
	}
	fmt.Fprintln(&sb, border)
	return sb.String()
}
