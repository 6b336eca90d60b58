// Package libdiff computes line diffs between a raw dump and its
// normalized form, showing which lines the normalizer repaired.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) prefix() string {
	switch o {
	case Delete:
		return "- "
	case Insert:
		return "+ "
	default:
		return "  "
	}
}

// Hunk is a run of lines sharing an operation.
type Hunk struct {
	Op    Op
	Lines []string
}

// Lines returns the line diff turning from into to.
func Lines(from, to string) []Hunk {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	res := make([]Hunk, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		h := Hunk{Lines: splitLines(diff.Text)}
		switch diff.Type {
		case diffpatch.DiffDelete:
			h.Op = Delete
		case diffpatch.DiffInsert:
			h.Op = Insert
		case diffpatch.DiffEqual:
			h.Op = Equal
		}
		if len(h.Lines) != 0 {
			res = append(res, h)
		}
	}
	return res
}

// Changed returns the number of deleted and inserted lines.
func Changed(hunks []Hunk) (deleted, inserted int) {
	for i := range hunks {
		switch hunks[i].Op {
		case Delete:
			deleted += len(hunks[i].Lines)
		case Insert:
			inserted += len(hunks[i].Lines)
		}
	}
	return deleted, inserted
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
