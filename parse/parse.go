package parse

import (
	"errors"
	"strings"

	"github.com/signadot/ldumpj/debug"
	"github.com/signadot/ldumpj/encode"
	"github.com/signadot/ldumpj/fixup"
	"github.com/signadot/ldumpj/grammar"
	"github.com/signadot/ldumpj/ir"
	"github.com/signadot/ldumpj/transform"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseString(string(d), opts...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	lines, report := fixup.Lines(s, pOpts.fixup...)
	if pOpts.report != nil {
		*pOpts.report = *report
	}
	texts := make([]string, len(lines))
	for i := range lines {
		texts[i] = lines[i].Text
	}
	normalized := strings.Join(texts, "\n")
	if debug.Fixup() {
		debug.Logf("fixup: %d lines in, %d out\n%s\n", report.Lines, len(lines), normalized)
	}
	root, err := grammar.Parse(normalized)
	if err != nil {
		return nil, newError(err, lines)
	}
	res := transform.Transform(root)
	if debug.Transform() {
		debug.Logf("transform: %s\n", encode.MustString(res))
	}
	return res, nil
}

func newError(err error, lines []fixup.Line) error {
	var gErr *grammar.Error
	if !errors.As(err, &gErr) {
		return &Error{Msg: err.Error()}
	}
	res := &Error{
		Line:   gErr.Pos.Line,
		Column: gErr.Pos.Column,
		Msg:    gErr.Msg,
	}
	// line 1 carries the implicit opening brace
	if res.Line == 1 {
		res.Column--
	}
	if i := res.Line - 1; i >= 0 && i < len(lines) {
		res.Src = lines[i].Src
	}
	return res
}
