// Package encode encodes IR nodes as JSON or YAML.
//
// # Usage
//
//	// indented JSON
//	err := encode.Encode(node, os.Stdout)
//
//	// compact JSON
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
//	// YAML
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
// Object keys are written in the order of the IR, which for converted
// dumps is the order of first occurrence in the input.
//
// # Related Packages
//
//   - github.com/signadot/ldumpj/ir - IR representation
//   - github.com/signadot/ldumpj/parse - Parse dump text to IR
package encode
