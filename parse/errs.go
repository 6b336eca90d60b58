package parse

import (
	"errors"
	"fmt"
)

var ErrParse = errors.New("parse error")

// Error is a grammar violation. Line and Column locate it in the
// normalized text; Src is the 1-based input line that normalized line was
// produced from. A dump ending too early fails on its last normalized
// line, since the implicit closing brace follows it. Src is 0 only when
// the position lies past all normalized lines.
type Error struct {
	Line, Column int
	Src          int
	Msg          string
}

func (e *Error) Error() string {
	if e.Src == 0 {
		return fmt.Sprintf("%s: normalized %d:%d (past the input): %s", ErrParse, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s: normalized %d:%d (input line %d): %s", ErrParse, e.Line, e.Column, e.Src, e.Msg)
}

func (e *Error) Unwrap() error {
	return ErrParse
}
