// Package grammar defines the tokens and productions of normalized dump
// text and parses it into a tree of Collection, Array, Header and Value
// nodes.
//
// In EBNF, with whitespace insignificant between tokens:
//
//	collection = "{" { item } [ "}" ] .
//	array      = "[" { item } "]" .
//	item       = header | value .
//	header     = key ( collection | array | value ) .
//	key        = KeySep | DQString ( "=>" | "=" ) .
//	value      = SQString | DQString .
//
// An unquoted key is lexed together with the separator following it on the
// same line, so a key may start with a bracket: "[x] = {" is a header while
// a lone "[" opens an array.
//
// The closing brace of a collection is optional; the normalizer may emit a
// brace that closes a container early, and a dump may end before all its
// containers are closed.
package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Collection is a {...} container. Closed records whether its closing
// brace was present.
type Collection struct {
	Pos lexer.Position

	Items  []*Item `"{" @@*`
	Closed bool    `@"}"?`
}

// Array is a [...] container. Its headers are keyed by small integers.
type Array struct {
	Pos lexer.Position

	Items []*Item `"[" @@* "]"`
}

type Item struct {
	Header *Header `  @@`
	Value  *Value  `| @@`
}

type Header struct {
	Pos lexer.Position

	Key        Key         `( @KeySep | @DQString @("=>" | "=") )`
	Collection *Collection `( @@`
	Array      *Array      `| @@`
	Value      *Value      `| @@ )`
}

const (
	arrow  = "=>"
	assign = "="
)

// Key is a header key and the separator following it. Name keeps the
// quotes of a double quoted key.
type Key struct {
	Name string
	Sep  string
}

// Capture splits a KeySep token, or takes a quoted key and its separator
// as two tokens.
func (k *Key) Capture(values []string) error {
	for _, v := range values {
		switch v {
		case arrow, assign:
			k.Sep = v
			continue
		}
		for _, sep := range []string{arrow, assign} {
			if name, ok := strings.CutSuffix(v, sep); ok {
				k.Name, k.Sep = strings.TrimSpace(name), sep
				break
			}
		}
		if k.Sep == "" {
			k.Name = v
		}
	}
	return nil
}

type Value struct {
	Pos lexer.Position

	Text string `@(SQString | DQString)`
}

var (
	dumpLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "SQString", Pattern: `'[^']+'`},
		{Name: "DQString", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "KeySep", Pattern: `[^'"{}=\s][^'"{}=\s]*(?:[ \t]+[^'"{}=\s]+)*[ \t]*=>?`},
		{Name: "Arrow", Pattern: `=>`},
		{Name: "Assign", Pattern: `=`},
		{Name: "Punct", Pattern: `[{}\[\]]`},
	})

	// the parser holds no per-parse state and is shared by all callers
	dumpParser = participle.MustBuild[Collection](
		participle.Lexer(dumpLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)

// String returns the EBNF of the grammar as understood by the parser.
func String() string {
	return dumpParser.String()
}
