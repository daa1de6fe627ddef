package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vancomm/minesweeper/internal/mines"
)

const EnvPrefix = "MINESWEEPER"

const (
	UIConsole  = "console"
	UITerminal = "terminal"
	UIDesktop  = "desktop"
)

type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

type App struct {
	UI          string `mapstructure:"ui"`
	Preset      string `mapstructure:"preset"`
	Params      string `mapstructure:"params"` // height:length:mines, wins over Preset
	Development bool   `mapstructure:"development"`
	Log         Log    `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui", UIConsole)
	v.SetDefault("preset", string(mines.Beginner))
	v.SetDefault("params", "")
	v.SetDefault("development", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
}

// NewApp reads the configuration from defaults, the optional file at path and
// MINESWEEPER_* environment variables, in increasing order of priority.
func NewApp(path string) (*App, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var cfg App
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c App) Validate() error {
	switch c.UI {
	case UIConsole, UITerminal, UIDesktop:
	default:
		return fmt.Errorf("unknown ui %q", c.UI)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if _, err := c.GameParams(); err != nil {
		return err
	}
	return nil
}

// GameParams returns the board the player starts with.
func (c App) GameParams() (mines.Params, error) {
	if c.Params != "" {
		return mines.ParseSeed(c.Params)
	}
	preset, err := mines.ParsePreset(c.Preset)
	if err != nil {
		return mines.Params{}, err
	}
	params, _ := preset.Params()
	return params, nil
}

func (c App) Fields() logrus.Fields {
	return map[string]any{
		"ui":              c.UI,
		"preset":          c.Preset,
		"params":          c.Params,
		"development":     c.Development,
		"log_level":       c.Log.Level,
		"log_file":        c.Log.File,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge,
	}
}
