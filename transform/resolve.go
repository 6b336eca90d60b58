package transform

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/signadot/ldumpj/ir"
)

// Kind distinguishes the two shapes a value token can resolve to.
type Kind int

const (
	Scalar Kind = iota
	Pair
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Pair:
		return "pair"
	}
	return "<unknown kind>"
}

// Entry is the result of resolving one child of a container. Key is only
// set for pairs.
type Entry struct {
	Kind  Kind
	Key   string
	Value *ir.Node
}

// Node returns the entry as a standalone value. A pair becomes the two
// element array [key, value].
func (e Entry) Node() *ir.Node {
	if e.Kind == Scalar {
		return e.Value
	}
	return ir.FromSlice([]*ir.Node{ir.FromString(e.Key), e.Value})
}

var (
	unquoter = strings.NewReplacer("'", "", `"`, "")

	// checked in this order, first occurrence only
	pairSeps = []string{" = ", " => "}
)

func unquote(s string) string {
	return unquoter.Replace(s)
}

// Key returns the name a header key token denotes.
func Key(tok string) string {
	return strings.TrimSpace(unquote(tok))
}

// Classify resolves the text of a quoted value token. Text containing
// " = " or " => " is an embedded pair whose right hand side is type
// resolved; anything else is a string scalar.
func Classify(text string) Entry {
	s := unquote(text)
	for _, sep := range pairSeps {
		if k, v, ok := strings.Cut(s, sep); ok {
			return Entry{
				Kind:  Pair,
				Key:   strings.TrimSpace(k),
				Value: ResolveType(strings.TrimSpace(v)),
			}
		}
	}
	return Entry{Kind: Scalar, Value: ir.FromString(strings.TrimSpace(s))}
}

// ResolveType gives v its type. "true", "false" and "none" are the bool
// and null literals. Text starting with a hex digit is tried as an
// integer: base 16 after a 0x prefix, base 10 otherwise. Digits may be
// grouped by single underscores, as in 1_000. Everything else, and
// anything failing to parse, stays a string.
func ResolveType(v string) *ir.Node {
	switch v {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	case "none":
		return ir.Null()
	}
	if v == "" || !isHexDigit(v[0]) {
		return ir.FromString(v)
	}
	if hex, ok := strings.CutPrefix(v, "0x"); ok {
		if n := parseInt(hex, 16); n != nil {
			return n
		}
		return ir.FromString(v)
	}
	if n := parseInt(v, 10); n != nil {
		return n
	}
	return ir.FromString(v)
}

func parseInt(v string, base int) *ir.Node {
	v, ok := ungroup(v)
	if !ok {
		return nil
	}
	i, err := strconv.ParseInt(v, base, 64)
	if err == nil {
		return ir.FromInt(i)
	}
	if !errors.Is(err, strconv.ErrRange) {
		return nil
	}
	b, ok := new(big.Int).SetString(v, base)
	if !ok {
		return nil
	}
	return ir.FromNumber(b.String())
}

// ungroup removes the underscores separating digit groups. It fails on a
// leading, trailing or doubled underscore.
func ungroup(v string) (string, bool) {
	if !strings.Contains(v, "_") {
		return v, true
	}
	if v == "" || v[0] == '_' || v[len(v)-1] == '_' || strings.Contains(v, "__") {
		return "", false
	}
	return strings.ReplaceAll(v, "_", ""), true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
