package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/session"
)

var ErrMalformedMove = errors.New("expected two numbers separated by a space or a comma")

// Console plays one game over a line based text stream.
type Console struct {
	session *session.Session
	in      io.Reader
	out     io.Writer
	log     logrus.FieldLogger
}

func New(s *session.Session, in io.Reader, out io.Writer, log logrus.FieldLogger) *Console {
	return &Console{session: s, in: in, out: out, log: log}
}

// ParseMove reads a 1-based "row col" or "row,col" pair and returns it
// 0-based. Anything after the second number is ignored.
func ParseMove(line string) (row, col int, err error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) < 2 {
		return 0, 0, ErrMalformedMove
	}
	if row, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrMalformedMove, err)
	}
	if col, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrMalformedMove, err)
	}
	return row - 1, col - 1, nil
}

// readLines feeds lines of any length to the game loop until the input ends.
func (c *Console) readLines(ctx context.Context, lines chan<- string, done chan<- error) {
	r := bufio.NewReader(c.in)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			select {
			case lines <- strings.TrimRight(line, "\r\n"):
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			done <- err
			return
		}
	}
}

// Run prompts for moves until the game is won or lost. It returns early when
// ctx is cancelled or the input runs out. If the input is an [io.Closer] it
// is closed on return so that the reader goroutine does not outlive Run.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if closer, ok := c.in.(io.Closer); ok {
		defer closer.Close()
	}

	lines := make(chan string)
	done := make(chan error, 1)
	go c.readLines(ctx, lines, done)

	game := c.session.Game()
	fmt.Fprintln(c.out, session.WelcomeMessage)

	for playing := true; playing; {
		fmt.Fprint(c.out, game.Board())
		fmt.Fprintln(c.out, "Move: ")

		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-done:
			return fmt.Errorf("unable to read move: %w", err)

		case line := <-lines:
			row, col, err := ParseMove(line)
			if err != nil {
				c.log.WithField("line", line).Debug("malformed move")
				fmt.Fprintf(c.out, "invalid move %q: %s\n", line, err)
				continue
			}
			if err := game.Check(row, col); err != nil {
				height, length := game.Dimensions()
				fmt.Fprintf(c.out, "invalid move %q: pick a row in 1..%d and a column in 1..%d\n",
					line, height, length)
				continue
			}
			playing = c.session.Reveal(row, col)
		}
	}

	fmt.Fprint(c.out, game.Board())
	fmt.Fprintln(c.out, c.session.Message())
	return nil
}
