package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/logging"
)

var (
	configPath string
	ui         string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.StringVar(&ui, "ui", "", "front end: console, terminal or desktop")
}

func run(ctx context.Context) error {
	cfg, err := config.NewApp(configPath)
	if err != nil {
		return err
	}
	if ui != "" {
		cfg.UI = ui
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// full screen front ends own the terminal
	var out io.Writer = os.Stderr
	if cfg.UI != config.UIConsole {
		out = io.Discard
	}
	log, err := logging.New(cfg, out)
	if err != nil {
		return err
	}

	log.WithFields(cfg.Fields()).Debug("config")

	if err := app.New(log, cfg).Start(ctx); err != nil {
		log.WithError(err).Error("failed to run")
		return err
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		stop()
		os.Exit(1)
	}
}
