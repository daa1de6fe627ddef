package stats

import (
	"time"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Record holds the results of every finished game played with one set of
// board params, or of all games together.
type Record struct {
	Played   int
	Won      int
	BestTime time.Duration // zero until the first win
}

func (r *Record) add(won bool, elapsed time.Duration) {
	r.Played++
	if !won {
		return
	}
	r.Won++
	if r.Won == 1 || elapsed < r.BestTime {
		r.BestTime = elapsed
	}
}

// WinningPercentage is the share of won games, rounded down.
func (r Record) WinningPercentage() int {
	if r.Played == 0 {
		return 0
	}
	return r.Won * 100 / r.Played
}

// HallOfFame keeps game results for the lifetime of the process.
type HallOfFame struct {
	total    Record
	byParams map[mines.Params]*Record
}

func NewHallOfFame() *HallOfFame {
	return &HallOfFame{byParams: make(map[mines.Params]*Record)}
}

func (h *HallOfFame) AddGame(params mines.Params, won bool, elapsed time.Duration) {
	h.total.add(won, elapsed)
	r, ok := h.byParams[params]
	if !ok {
		r = &Record{}
		h.byParams[params] = r
	}
	r.add(won, elapsed)
}

func (h *HallOfFame) Games() int { return h.total.Played }

func (h *HallOfFame) Wins() int { return h.total.Won }

func (h *HallOfFame) WinningPercentage() int {
	return h.total.WinningPercentage()
}

// BestTime returns the fastest win so far; ok is false if nothing was won yet.
func (h *HallOfFame) BestTime() (best time.Duration, ok bool) {
	return h.total.BestTime, h.total.Won > 0
}

// Record returns a copy of the results for games played with params.
func (h *HallOfFame) Record(params mines.Params) Record {
	if r, ok := h.byParams[params]; ok {
		return *r
	}
	return Record{}
}
