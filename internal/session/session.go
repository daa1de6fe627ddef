package session

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/clock"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/stats"
)

const (
	WelcomeMessage = "Welcome to Minesweeper!"
	WonMessage     = "Congratulations! You won the game."
	LostMessage    = "Oops! Sorry, you lose."
)

// Session is what a front end talks to: one game at a time, its stopwatch and
// the hall of fame the finished games go to.
type Session struct {
	game    *mines.Game
	fame    *stats.HallOfFame
	watch   *clock.Stopwatch
	rand    *rand.Rand
	log     logrus.FieldLogger
	started bool
	over    bool
	final   time.Duration
}

func New(
	game *mines.Game,
	fame *stats.HallOfFame,
	watch *clock.Stopwatch,
	r *rand.Rand,
	log logrus.FieldLogger,
) *Session {
	if r == nil {
		r = mines.NewRand()
	}
	return &Session{
		game:  game,
		fame:  fame,
		watch: watch,
		rand:  r,
		log:   log,
	}
}

func (s *Session) Game() *mines.Game { return s.game }

func (s *Session) HallOfFame() *stats.HallOfFame { return s.fame }

func (s *Session) Over() bool { return s.over }

func (s *Session) Started() bool { return s.started }

func (s *Session) start() {
	if s.started {
		return
	}
	s.started = true
	s.watch.Start()
}

// Reveal makes a move and reports whether the game goes on. Once the game is
// over every further move is ignored.
func (s *Session) Reveal(row, col int) bool {
	if s.over {
		return false
	}
	if s.game.Check(row, col) != nil {
		return true
	}
	s.start()
	if s.game.MakeMove(row, col) {
		return true
	}
	s.finish()
	return false
}

func (s *Session) Flag(row, col int) {
	if s.over || s.game.Check(row, col) != nil {
		return
	}
	s.start()
	s.game.Flag(row, col)
}

func (s *Session) finish() {
	s.over = true
	s.final = s.watch.Elapsed()
	s.watch.Stop()

	won := s.game.Status() == mines.Won
	if !won {
		s.game.RevealMines()
	}
	s.fame.AddGame(s.game.Params(), won, s.final)

	best, _ := s.fame.BestTime()
	s.log.WithFields(logrus.Fields{
		"game":     s.game.ID().String(),
		"params":   s.game.Params().Seed(),
		"won":      won,
		"elapsed":  s.final.String(),
		"played":   s.fame.Games(),
		"wins":     s.fame.Wins(),
		"bestTime": best.String(),
	}).Info("game over")
}

// NewGame abandons the current round and starts over with the same params.
// An abandoned round is not recorded.
func (s *Session) NewGame() {
	s.watch.Stop()
	s.game.NewGame()
	s.started, s.over, s.final = false, false, 0
}

// ChangePreset replaces the game with a fresh one using the preset params.
func (s *Session) ChangePreset(preset mines.Preset) error {
	game, err := mines.NewPreset(preset, s.rand)
	if err != nil {
		return fmt.Errorf("unable to change preset: %w", err)
	}
	s.watch.Stop()
	s.game = game
	s.started, s.over, s.final = false, false, 0
	s.log.WithField("preset", preset).Debug("preset changed")
	return nil
}

func (s *Session) Elapsed() time.Duration {
	if s.over {
		return s.final
	}
	return s.watch.Elapsed()
}

// Message is the status line shown above the board.
func (s *Session) Message() string {
	switch {
	case !s.started:
		return WelcomeMessage
	case s.over && s.game.Status() == mines.Won:
		return WonMessage
	case s.over:
		return LostMessage
	default:
		return fmt.Sprintf("Mines left: %d", s.game.MinesLeft())
	}
}
