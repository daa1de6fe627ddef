package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper/internal/config"
)

// New builds the application logger. Text output goes to out; full screen
// front ends pass io.Discard and rely on the log file instead.
func New(cfg *config.App, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.Development && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   cfg.Development,
		FullTimestamp: true,
	})

	if cfg.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Level:      level,
			Formatter: &logrus.JSONFormatter{
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", cfg.Log.File, err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
