package debug

import (
	"fmt"
	"os"

	"github.com/signadot/ldumpj/encode"
	"github.com/signadot/ldumpj/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = encode.MustString(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
