package parse

import "github.com/signadot/ldumpj/fixup"

type parseOpts struct {
	fixup  []fixup.Option
	report *fixup.Report
}

type ParseOption func(*parseOpts)

// SkipMarkers replaces the markers of sub-domains dropped before parsing.
func SkipMarkers(markers ...string) ParseOption {
	return func(o *parseOpts) {
		o.fixup = append(o.fixup, fixup.SkipMarkers(markers...))
	}
}

// WithReport makes Parse store the normalizer's repair report in r.
func WithReport(r *fixup.Report) ParseOption {
	return func(o *parseOpts) { o.report = r }
}
