// Package eval evaluates expr-lang expressions against converted dumps.
//
// The environment of an expression is the top-level object of the dump,
// so top-level keys are variables and keys which are not identifiers are
// reached through $env:
//
//	$env["com.apple.xpc.launchd.domain.system"]["service count"]
//	filter(values(services), .state == "running")
//
// The whole document is also available as root.
package eval

import (
	"fmt"
	"maps"

	"github.com/expr-lang/expr"

	"github.com/signadot/ldumpj/ir"
)

const rootName = "root"

// Query evaluates expression with node as its environment and returns the
// result as a node.
func Query(node *ir.Node, expression string) (*ir.Node, error) {
	v := ToAny(node)
	env := map[string]any{}
	if m, ok := v.(map[string]any); ok {
		env = maps.Clone(m)
	}
	if _, ok := env[rootName]; !ok {
		env[rootName] = v
	}
	program, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: error evaluating %q: %w", ErrEval, expression, err)
	}
	return FromAny(res)
}
