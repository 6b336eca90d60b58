package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Write renders hunks one line at a time, prefixed by "- ", "+ " or two
// spaces. Equal lines are included when context is true.
func Write(w io.Writer, hunks []Hunk, context, colors bool) error {
	paint := map[Op]*color.Color{
		Equal:  color.New(color.Reset),
		Delete: color.New(color.FgRed),
		Insert: color.New(color.FgGreen),
	}
	for _, c := range paint {
		if colors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	for i := range hunks {
		h := &hunks[i]
		if h.Op == Equal && !context {
			continue
		}
		for _, ln := range h.Lines {
			if _, err := fmt.Fprintln(w, paint[h.Op].Sprint(h.Op.prefix()+ln)); err != nil {
				return err
			}
		}
	}
	return nil
}
