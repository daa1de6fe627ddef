package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	b := NewBoard(2, 3)
	height, length := b.Dimensions()
	require.Equal(t, 2, height)
	require.Equal(t, 3, length)
	assert.Equal(t, 6, b.Count(Unknown))

	b.Set(1, 2, Mine)
	b.Set(0, 0, Flagged)
	b.Set(0, 1, TileFromCount(3))
	assert.Equal(t, Mine, b.Get(1, 2))
	assert.Equal(t, "---\n|X3 |\n|  *|\n---\n", b.String())

	snapshot := b.Snapshot()
	snapshot[1][2] = Empty
	assert.Equal(t, Mine, b.Get(1, 2), "snapshot must not alias the board")
	assert.Equal(t, [][]Tile{{Flagged, 3, Unknown}, {Unknown, Unknown, Empty}}, snapshot)

	b.Clear()
	assert.Equal(t, 6, b.Count(Unknown))
}

func TestBoardInBounds(t *testing.T) {
	b := NewBoard(3, 5)
	tests := []struct {
		row, col int
		ok       bool
	}{
		{0, 0, true},
		{2, 4, true},
		{3, 0, false},
		{0, 5, false},
		{-1, 2, false},
		{1, -1, false},
	}
	for _, test := range tests {
		assert.Equal(t, test.ok, b.InBounds(test.row, test.col), "%d:%d", test.row, test.col)
	}
}

func TestMinefieldAdjacent(t *testing.T) {
	f := NewMinefield(3, 3)
	f.place(0, 0)
	f.place(1, 1)
	f.place(2, 2)

	assert.Equal(t, 3, f.Mines())
	assert.Equal(t, 2, f.Adjacent(1, 1), "the cell itself is not counted")
	assert.Equal(t, 2, f.Adjacent(0, 1))
	assert.Equal(t, 1, f.Adjacent(0, 2))
	assert.Equal(t, "* - - \n- * - \n- - * \n", f.String())

	f.Clear()
	assert.Equal(t, 0, f.Mines())
}
