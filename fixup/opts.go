package fixup

import "strings"

type fixupOpts struct {
	markers []string
}

func (o *fixupOpts) skip(line string) bool {
	for _, m := range o.markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

type Option func(*fixupOpts)

// DefaultSkipMarkers returns the markers of sub-domains which are dropped
// by default. BSServiceDomains embeds a JSON blob the grammar cannot
// describe.
func DefaultSkipMarkers() []string {
	return []string{"BSServiceDomains"}
}

// SkipMarkers replaces the list of markers. Any line containing one of the
// markers is dropped.
func SkipMarkers(markers ...string) Option {
	return func(o *fixupOpts) {
		o.markers = nil
		for _, m := range markers {
			if m != "" {
				o.markers = append(o.markers, m)
			}
		}
	}
}
