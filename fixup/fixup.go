// Package fixup repairs the output of launchctl dumpstate line by line so
// that it conforms to the dump grammar.
//
// Each retained line of the result is one of
//
//	'key => value'
//	'key = value'
//	key = {        (or [, or a bare {, }, [, ])
//	'any other text'
//
// Lines are never reordered. A line may be dropped or expand to more than
// one output line.
package fixup

import (
	"strings"
)

// Line is a normalized line together with the 1-based input line it was
// produced from.
type Line struct {
	Text string
	Src  int
}

// Report counts what the normalizer did to its input.
type Report struct {
	Lines    int // input lines read
	Blank    int // blank lines dropped
	Skipped  int // lines dropped for containing a skip marker
	Arrows   int // lines whose => separators were repaired
	Nones    int // synthetic "none" values emitted
	Assigns  int // "key =" lines repaired
	Quoted   int // lines wrapped in single quotes
	Passthru int // lines emitted unchanged
}

const (
	arrow = "=>"
	none  = "none"
)

// Fixup returns the normalized form of text.
func Fixup(text string, opts ...Option) string {
	lines, _ := Lines(text, opts...)
	var b strings.Builder
	for i := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(lines[i].Text)
	}
	return b.String()
}

// Lines normalizes text and returns the resulting lines together with a
// report of the repairs made.
func Lines(text string, opts ...Option) ([]Line, *Report) {
	fOpts := &fixupOpts{markers: DefaultSkipMarkers()}
	for _, f := range opts {
		f(fOpts)
	}
	n := &normalizer{opts: fOpts, report: &Report{}}
	in := strings.Split(text, "\n")
	first := 0
	if len(in) > 0 && strings.TrimSpace(in[0]) == "" {
		first = 1
		n.report.Lines++
		n.report.Blank++
	}
	for i := first; i < len(in); i++ {
		n.line(in[i], i+1)
	}
	return n.out, n.report
}

type normalizer struct {
	opts   *fixupOpts
	report *Report
	out    []Line
}

func (n *normalizer) emit(text string, src int) {
	n.out = append(n.out, Line{Text: text, Src: src})
}

func (n *normalizer) line(raw string, src int) {
	n.report.Lines++
	line := strings.TrimSpace(raw)
	if line == "" {
		n.report.Blank++
		return
	}
	if n.opts.skip(line) {
		n.report.Skipped++
		return
	}
	if isQuoted(line) {
		n.report.Passthru++
		n.emit(line, src)
		return
	}

	switch count := strings.Count(line, arrow); {
	case count == 1:
		key, rhs, _ := strings.Cut(line, arrow)
		if n.repairArrow(key, rhs, src) {
			n.report.Arrows++
			return
		}
	case count >= 2:
		// everything but the final pair carries no reliable value
		segs := strings.Split(line, arrow)
		for _, seg := range segs[:len(segs)-2] {
			n.emit(pair(seg, arrow, none), src)
			n.report.Nones++
		}
		key, rhs := segs[len(segs)-2], segs[len(segs)-1]
		if !n.repairArrow(key, rhs, src) {
			n.emit(pair(key, arrow, rhs), src)
		}
		n.report.Arrows++
		return
	}

	if strings.HasSuffix(line, " =") {
		idx := strings.Index(line, "=")
		n.emit(pair(line[:idx], "=", none), src)
		n.report.Assigns++
		n.report.Nones++
		return
	}
	if isDelimiter(line) {
		n.report.Passthru++
		n.emit(line, src)
		return
	}
	n.report.Quoted++
	n.emit(quote(line), src)
}

// repairArrow handles a key => rhs pair whose right hand side is missing
// or is the closing brace of the enclosing container.
func (n *normalizer) repairArrow(key, rhs string, src int) bool {
	switch strings.TrimSpace(rhs) {
	case "":
		n.emit(pair(key, arrow, none), src)
	case "}":
		n.emit(pair(key, arrow, none), src)
		n.emit("}", src)
	default:
		return false
	}
	n.report.Nones++
	return true
}

func pair(key, sep, val string) string {
	return quote(strings.TrimSpace(key) + " " + sep + " " + strings.TrimSpace(val))
}

func quote(s string) string {
	return "'" + s + "'"
}

// isQuoted reports whether line is exactly one single quoted literal,
// which is what the normalizer itself produces. Only literals without an
// apostrophe inside are recognized: a line such as "name = it's" is quoted
// again on every pass, and the grammar rejects it either way.
func isQuoted(line string) bool {
	return len(line) >= 3 && line[0] == '\'' && line[len(line)-1] == '\'' &&
		strings.Count(line, "'") == 2
}

// isDelimiter reports whether line ends with a structural delimiter and
// should be left unquoted. A trailing ] only counts when the line has no [
// before it, so that values like "talagentd[69851]" stay scalars.
func isDelimiter(line string) bool {
	switch line[len(line)-1] {
	case '{', '}', '[':
		return true
	case ']':
		return !strings.Contains(line, "[")
	}
	return false
}
