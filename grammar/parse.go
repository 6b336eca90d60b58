package grammar

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/signadot/ldumpj/debug"
)

// Parse parses normalized text. The text is wrapped in the implicit
// top-level collection, so its first line starts at column 2 of line 1.
func Parse(normalized string) (*Collection, error) {
	root, err := dumpParser.ParseString("", "{"+normalized+"}")
	if err != nil {
		return nil, newError(err)
	}
	if debug.Grammar() {
		debug.Logf("grammar: parsed %d top level items\n", len(root.Items))
	}
	return root, nil
}

func newError(err error) error {
	var pErr participle.Error
	if !errors.As(err, &pErr) {
		return fmt.Errorf("%w: %w", ErrGrammar, err)
	}
	return &Error{Pos: pErr.Position(), Msg: pErr.Message()}
}

// Error is a grammar violation at a position in the wrapped normalized
// text.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %d:%d: %s", ErrGrammar, e.Pos.Line, e.Pos.Column, e.Msg)
}

func (e *Error) Unwrap() error {
	return ErrGrammar
}
