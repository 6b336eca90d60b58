package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Fixup     bool
	Grammar   bool
	Transform bool
}

var d *debug

func init() {
	d = &debug{}
	d.Fixup = boolEnv("LDUMPJ_DEBUG_FIXUP")
	d.Grammar = boolEnv("LDUMPJ_DEBUG_GRAMMAR")
	d.Transform = boolEnv("LDUMPJ_DEBUG_TRANSFORM")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Fixup() bool {
	return d.Fixup
}
func Grammar() bool {
	return d.Grammar
}
func Transform() bool {
	return d.Transform
}
