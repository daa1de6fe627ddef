package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/clock"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/desktop"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
	"github.com/vancomm/minesweeper/internal/stats"
	"github.com/vancomm/minesweeper/internal/tui"
)

type App struct {
	logger *logrus.Logger
	cfg    *config.App
	in     io.Reader
	out    io.Writer
}

func New(logger *logrus.Logger, cfg *config.App) *App {
	return &App{
		logger: logger,
		cfg:    cfg,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

func (a *App) session() (*session.Session, error) {
	params, err := a.cfg.GameParams()
	if err != nil {
		return nil, err
	}

	mines.Log = a.logger
	r := mines.NewRand()
	game, err := mines.New(params, r)
	if err != nil {
		return nil, fmt.Errorf("unable to create game: %w", err)
	}

	return session.New(game, stats.NewHallOfFame(), clock.NewStopwatch(), r, a.logger), nil
}

// Start plays until the player is done or ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	s, err := a.session()
	if err != nil {
		return err
	}

	a.logger.WithFields(logrus.Fields{
		"ui":     a.cfg.UI,
		"params": s.Game().Params().Seed(),
	}).Info("starting")

	switch a.cfg.UI {
	case config.UIConsole:
		err = console.New(s, a.in, a.out, a.logger).Run(ctx)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case config.UITerminal:
		err = tui.Run(ctx, s, a.logger)
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			err = nil
		}
	case config.UIDesktop:
		err = desktop.Run(ctx, s, a.logger)
	default:
		err = fmt.Errorf("unknown ui %q", a.cfg.UI)
	}

	if errors.Is(err, context.Canceled) {
		err = nil
	}

	fame := s.HallOfFame()
	best, _ := fame.BestTime()
	board := fame.Record(s.Game().Params())
	a.logger.WithFields(logrus.Fields{
		"played":        fame.Games(),
		"wins":          fame.Wins(),
		"percent":       fame.WinningPercentage(),
		"bestTime":      clock.Format(best),
		"params":        s.Game().Params().Seed(),
		"paramsPlayed":  board.Played,
		"paramsWins":    board.Won,
		"paramsPercent": board.WinningPercentage(),
	}).Info("bye")

	return err
}
