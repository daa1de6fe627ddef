package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestDefaults(t *testing.T) {
	cfg, err := NewApp("")
	require.NoError(t, err)

	assert.Equal(t, UIConsole, cfg.UI)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Development)

	params, err := cfg.GameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Height: 10, Length: 10, MineCount: 20}, params)
}

func TestFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minesweeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ui: terminal
preset: expert
log:
  level: debug
  file: /tmp/minesweeper.log
  max_backups: 7
`), 0o600))

	t.Setenv("MINESWEEPER_PRESET", "intermediate")
	t.Setenv("MINESWEEPER_LOG_MAX_AGE", "3")

	cfg, err := NewApp(path)
	require.NoError(t, err)

	assert.Equal(t, UITerminal, cfg.UI)
	assert.Equal(t, "intermediate", cfg.Preset, "env wins over the file")
	assert.Equal(t, Log{
		Level:      "debug",
		File:       "/tmp/minesweeper.log",
		MaxSize:    10,
		MaxBackups: 7,
		MaxAge:     3,
	}, cfg.Log)

	params, err := cfg.GameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Height: 25, Length: 25, MineCount: 125}, params)
}

func TestCustomParams(t *testing.T) {
	t.Setenv("MINESWEEPER_PARAMS", "8:30:24")

	cfg, err := NewApp("")
	require.NoError(t, err)

	params, err := cfg.GameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Height: 8, Length: 30, MineCount: 24}, params)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"ui", "MINESWEEPER_UI", "web"},
		{"preset", "MINESWEEPER_PRESET", "nightmare"},
		{"params", "MINESWEEPER_PARAMS", "3:3:9"},
		{"log level", "MINESWEEPER_LOG_LEVEL", "loud"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(test.key, test.value)
			_, err := NewApp("")
			assert.Error(t, err)
		})
	}

	_, err := NewApp(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
