// Package parse converts launchctl dump text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// collect repair statistics
//	report := &fixup.Report{}
//	node, err := parse.ParseString(text, parse.WithReport(report))
//
// Parsing runs three passes: the fixup normalizer repairs malformed lines,
// the grammar parser builds a parse tree and the transform pass resolves
// it into values. The input is the body of a dump without enclosing
// braces; an implicit top-level container is added. A grammar violation
// fails the whole conversion with an *Error.
//
// # Related Packages
//
//   - github.com/signadot/ldumpj/ir - IR representation
//   - github.com/signadot/ldumpj/encode - Encode IR to JSON or YAML
//   - github.com/signadot/ldumpj/fixup - Line normalizer
package parse
