package parse

import (
	"errors"
	"fmt"
)

var ErrParse = errors.New("parse error")

// Error reports a parse failure as a byte offset into the input plus a
// human-readable message. It unwraps to ErrParse.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

func (e *Error) Unwrap() error { return ErrParse }
