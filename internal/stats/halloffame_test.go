package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestHallOfFame(t *testing.T) {
	var (
		beginner, _ = mines.Beginner.Params()
		expert, _   = mines.Expert.Params()
		h           = NewHallOfFame()
	)

	_, ok := h.BestTime()
	assert.False(t, ok)
	assert.Equal(t, 0, h.WinningPercentage())

	h.AddGame(beginner, false, 5*time.Second)
	h.AddGame(beginner, true, 90*time.Second)
	h.AddGame(beginner, true, 60*time.Second)
	h.AddGame(expert, true, 45*time.Minute)

	assert.Equal(t, 4, h.Games())
	assert.Equal(t, 3, h.Wins())
	assert.Equal(t, 75, h.WinningPercentage())

	best, ok := h.BestTime()
	assert.True(t, ok)
	assert.Equal(t, 60*time.Second, best, "losses do not count towards the best time")

	assert.Equal(t, Record{Played: 3, Won: 2, BestTime: 60 * time.Second}, h.Record(beginner))
	assert.Equal(t, 66, h.Record(beginner).WinningPercentage())
	assert.Equal(t, Record{}, h.Record(mines.Params{Height: 3, Length: 3, MineCount: 1}))
}

func TestInstantWinStaysBest(t *testing.T) {
	beginner, _ := mines.Beginner.Params()
	h := NewHallOfFame()

	h.AddGame(beginner, true, 0)
	h.AddGame(beginner, true, 5*time.Second)

	best, ok := h.BestTime()
	assert.True(t, ok)
	assert.Equal(t, time.Duration(0), best)
	assert.Equal(t, time.Duration(0), h.Record(beginner).BestTime)
}
