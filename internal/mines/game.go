package mines

import (
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

type Game struct {
	params         Params
	board          *Board
	minefield      *Minefield
	firstMoveTaken bool
	rand           *rand.Rand
	id             uuid.UUID
}

// New creates a game with no mines placed yet; they are laid out on the first
// move. A nil r is replaced with [NewRand].
func New(params Params, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand()
	}
	g := &Game{
		params:    params,
		board:     NewBoard(params.Height, params.Length),
		minefield: NewMinefield(params.Height, params.Length),
		rand:      r,
		id:        uuid.New(),
	}
	g.log().Debug("game created")
	return g, nil
}

func NewPreset(preset Preset, r *rand.Rand) (*Game, error) {
	params, ok := preset.Params()
	if !ok {
		_, err := ParsePreset(string(preset))
		return nil, err
	}
	return New(params, r)
}

func (g *Game) log() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"game":   g.id.String(),
		"params": g.params.Seed(),
	})
}

func (g *Game) ID() uuid.UUID { return g.id }

func (g *Game) Params() Params { return g.params }

func (g *Game) Dimensions() (height, length int) {
	return g.board.Dimensions()
}

// Snapshot returns a copy of the player-visible board.
func (g *Game) Snapshot() [][]Tile {
	return g.board.Snapshot()
}

func (g *Game) Tile(row, col int) Tile {
	return g.board.Get(row, col)
}

func (g *Game) Board() *Board {
	return g.board
}

// Check returns an [InvalidCoordinateError] if row:col is off the board.
func (g *Game) Check(row, col int) error {
	if !g.board.InBounds(row, col) {
		return InvalidCoordinateError{Row: row, Col: col}
	}
	return nil
}

// NewGame starts over on the same board. Mines get reshuffled on the next
// first move.
func (g *Game) NewGame() {
	g.board.Clear()
	g.firstMoveTaken = false
	g.id = uuid.New()
	g.log().Debug("new game")
}

// MakeMove reveals row:col and reports whether the game goes on. It returns
// false when a mine has been hit or when the last safe cell has been
// revealed. Moves off the board or on cells that are already revealed or
// flagged change nothing and return true.
func (g *Game) MakeMove(row, col int) bool {
	if !g.board.InBounds(row, col) {
		g.log().WithFields(logrus.Fields{"row": row, "col": col}).
			Debug("move outside of the board ignored")
		return true
	}
	if g.board.Get(row, col) != Unknown {
		return true
	}

	if !g.firstMoveTaken {
		g.shuffleMines(row, col)
		g.firstMoveTaken = true
		g.log().WithField("mines", g.minefield.Mines()).Debug("mines placed")
		if Log.IsLevelEnabled(logrus.TraceLevel) {
			g.log().Trace("minefield:\n" + g.minefield.String())
		}
	}

	g.revealTile(row, col)

	switch g.board.Get(row, col) {
	case Mine:
		g.log().WithFields(logrus.Fields{"row": row, "col": col}).Debug("mine hit")
		return false
	case Empty:
		g.revealNeighbours(row, col)
	}

	if g.IsGameWon() {
		g.log().Debug("game won")
		return false
	}
	return true
}

func (g *Game) revealTile(row, col int) {
	if g.minefield.MineAt(row, col) {
		g.board.Set(row, col, Mine)
		return
	}
	g.board.Set(row, col, TileFromCount(g.minefield.Adjacent(row, col)))
}

// revealNeighbours opens every unknown neighbour of row:col and keeps going
// through neighbours of the ones that turn out empty.
func (g *Game) revealNeighbours(row, col int) {
	height, length := g.board.Dimensions()

	var todo deque.Deque[int]
	todo.PushBack(row*length + col)

	for todo.Len() > 0 {
		i := todo.PopFront()
		forEachNeighbour(height, length, i/length, i%length, func(r, c int) {
			if g.board.Get(r, c) != Unknown {
				return
			}
			g.revealTile(r, c)
			if g.board.Get(r, c) == Empty {
				todo.PushBack(r*length + c)
			}
		})
	}
}

// Flag toggles a flag on an unknown cell. Revealed cells are left alone.
func (g *Game) Flag(row, col int) {
	if !g.board.InBounds(row, col) {
		return
	}
	switch g.board.Get(row, col) {
	case Unknown:
		g.board.Set(row, col, Flagged)
	case Flagged:
		g.board.Set(row, col, Unknown)
	}
}

// IsGameWon reports whether every cell without a mine has been revealed.
// Mines do not have to be flagged.
func (g *Game) IsGameWon() bool {
	height, length := g.board.Dimensions()
	for row := range height {
		for col := range length {
			if g.board.Get(row, col) == Unknown && !g.minefield.MineAt(row, col) {
				return false
			}
		}
	}
	return true
}

// Status derives the state of the current round from the board.
func (g *Game) Status() Status {
	switch {
	case !g.firstMoveTaken:
		return Playing
	case g.board.Count(Mine) > 0:
		return Lost
	case g.IsGameWon():
		return Won
	default:
		return Playing
	}
}

// MinesLeft is the mine count minus the number of flags on the board. It goes
// negative when the player places more flags than there are mines.
func (g *Game) MinesLeft() int {
	return g.params.MineCount - g.board.Count(Flagged)
}

// RevealMines shows every mine that is still hidden. Flags are kept as they
// are.
func (g *Game) RevealMines() {
	height, length := g.board.Dimensions()
	for row := range height {
		for col := range length {
			if g.minefield.MineAt(row, col) && g.board.Get(row, col) == Unknown {
				g.board.Set(row, col, Mine)
			}
		}
	}
}
