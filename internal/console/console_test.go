package console

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/clock"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
	"github.com/vancomm/minesweeper/internal/stats"
)

func newConsole(t *testing.T, params mines.Params, seed uint64, in io.Reader) (*Console, *bytes.Buffer, *session.Session) {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, 2))
	game, err := mines.New(params, r)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	s := session.New(game, stats.NewHallOfFame(), clock.NewStopwatch(), r, log)
	var out bytes.Buffer
	return New(s, in, &out, log), &out, s
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		line     string
		row, col int
		ok       bool
	}{
		{"1 1", 0, 0, true},
		{"3,7", 2, 6, true},
		{"  10   2  ", 9, 1, true},
		{"4, 5", 3, 4, true},
		{"2 3 9", 1, 2, true},
		{"0 0", -1, -1, true},
		{"", 0, 0, false},
		{"5", 0, 0, false},
		{"a b", 0, 0, false},
		{"1 x", 0, 0, false},
	}
	for _, test := range tests {
		row, col, err := ParseMove(test.line)
		if !test.ok {
			assert.ErrorIs(t, err, ErrMalformedMove, test.line)
			continue
		}
		require.NoError(t, err, test.line)
		assert.Equal(t, test.row, row, test.line)
		assert.Equal(t, test.col, col, test.line)
	}
}

func TestRunWin(t *testing.T) {
	c, out, s := newConsole(t,
		mines.Params{Height: 3, Length: 3, MineCount: 0}, 1,
		strings.NewReader("nonsense\n0 0\n4,1\n2 2\n"),
	)
	require.NoError(t, c.Run(context.Background()))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, session.WelcomeMessage+"\n"))
	assert.Contains(t, text, `invalid move "nonsense"`)
	assert.Contains(t, text, `invalid move "0 0": pick a row in 1..3 and a column in 1..3`)
	assert.Contains(t, text, `invalid move "4,1"`)
	assert.True(t, strings.HasSuffix(text, "---\n|000|\n|000|\n|000|\n---\n"+session.WonMessage+"\n"))
	assert.Equal(t, 1, s.HallOfFame().Wins())
}

func TestRunSingleSafeCell(t *testing.T) {
	c, out, s := newConsole(t,
		mines.Params{Height: 2, Length: 2, MineCount: 3}, 1,
		strings.NewReader("1 1\n"),
	)
	require.NoError(t, c.Run(context.Background()))
	assert.True(t, strings.HasSuffix(out.String(), "--\n|3 |\n|  |\n--\n"+session.WonMessage+"\n"))
	assert.Equal(t, mines.Won, s.Game().Status())
}

func TestRunLose(t *testing.T) {
	for seed := range uint64(64) {
		// the middle cell always borders the only mine, so the second move
		// either hits it or wins
		c, out, s := newConsole(t,
			mines.Params{Height: 1, Length: 3, MineCount: 1}, seed,
			strings.NewReader("1 2\n1 1\n"),
		)
		require.NoError(t, c.Run(context.Background()))
		if s.Game().Status() != mines.Lost {
			continue
		}
		assert.True(t, strings.HasSuffix(out.String(), "---\n|*1 |\n---\n"+session.LostMessage+"\n"))
		assert.Equal(t, 1, s.HallOfFame().Games())
		return
	}
	t.Fatal("no seed produced a lost game")
}

func TestRunEndOfInput(t *testing.T) {
	c, out, _ := newConsole(t,
		mines.Params{Height: 5, Length: 5, MineCount: 5}, 1,
		strings.NewReader(""),
	)
	assert.ErrorIs(t, c.Run(context.Background()), io.EOF)
	assert.Contains(t, out.String(), "Move: ")
}

func TestRunCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	c, _, _ := newConsole(t, mines.Params{Height: 5, Length: 5, MineCount: 5}, 1, pr)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.Run(ctx), context.DeadlineExceeded)
}

func TestRunLongLine(t *testing.T) {
	long := strings.Repeat("7", 70000)
	c, out, s := newConsole(t,
		mines.Params{Height: 1, Length: 2, MineCount: 0}, 1,
		strings.NewReader(long+"\n1 1\n"),
	)
	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, out.String(), "invalid move")
	assert.True(t, strings.HasSuffix(out.String(), session.WonMessage+"\n"))
	assert.Equal(t, mines.Won, s.Game().Status())
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	c, _, s := newConsole(t,
		mines.Params{Height: 1, Length: 2, MineCount: 0}, 1,
		strings.NewReader("1 2"),
	)
	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, mines.Won, s.Game().Status())
}

func TestRunClosesInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	c, _, s := newConsole(t, mines.Params{Height: 1, Length: 2, MineCount: 0}, 1, pr)

	errc := make(chan error, 1)
	go func() { errc <- c.Run(context.Background()) }()

	_, err := io.WriteString(pw, "1 1\n")
	require.NoError(t, err)
	require.NoError(t, <-errc)
	assert.Equal(t, mines.Won, s.Game().Status())

	_, err = io.WriteString(pw, "1 2\n")
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
