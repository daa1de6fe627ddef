package mines

import (
	"fmt"
	"strings"
)

// Minefield is the hidden ground truth of a game.
type Minefield struct {
	height, length int
	mines          []bool
}

func NewMinefield(height, length int) *Minefield {
	return &Minefield{
		height: height,
		length: length,
		mines:  make([]bool, height*length),
	}
}

func (f *Minefield) Clear() {
	for i := range f.mines {
		f.mines[i] = false
	}
}

func (f *Minefield) MineAt(row, col int) bool {
	return f.mines[row*f.length+col]
}

func (f *Minefield) place(row, col int) {
	f.mines[row*f.length+col] = true
}

// Mines returns the total number of mines placed.
func (f *Minefield) Mines() (count int) {
	for _, m := range f.mines {
		if m {
			count++
		}
	}
	return
}

// Adjacent counts mines among the in-bounds neighbours of row:col. The cell
// itself is not counted.
func (f *Minefield) Adjacent(row, col int) (n int) {
	forEachNeighbour(f.height, f.length, row, col, func(r, c int) {
		if f.MineAt(r, c) {
			n++
		}
	})
	return
}

func (f *Minefield) String() string {
	var b strings.Builder
	for row := range f.height {
		for col := range f.length {
			if f.MineAt(row, col) {
				fmt.Fprint(&b, "* ")
			} else {
				fmt.Fprint(&b, "- ")
			}
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

func forEachNeighbour(height, length, row, col int, fn func(r, c int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := row+dr, col+dc
			if (dr != 0 || dc != 0) &&
				0 <= r && r < height &&
				0 <= c && c < length {
				fn(r, c)
			}
		}
	}
}
