package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidParams = errors.New("invalid game params")

type InvalidCoordinateError struct {
	Row, Col int
}

// [InvalidCoordinateError] implements [error]
func (e InvalidCoordinateError) Error() string {
	return fmt.Sprintf("coordinate %d:%d is outside of the board", e.Row, e.Col)
}
