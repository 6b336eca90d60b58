package fixup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func texts(lines []Line) []string {
	var res []string
	for i := range lines {
		res = append(res, lines[i].Text)
	}
	return res
}

func TestLineRules(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  []string
	}{
		{name: "empty arrow", in: "client =>", out: []string{"'client => none'"}},
		{name: "arrow", in: "XPC_SERVICE_NAME => com.apple.remoted", out: []string{"'XPC_SERVICE_NAME => com.apple.remoted'"}},
		{name: "arrow closing brace", in: "a => }", out: []string{"'a => none'", "}"}},
		{
			name: "two arrows",
			in:   `"graphData" => 				"client" => "com.apple.modelcatalogd"`,
			out:  []string{`'"graphData" => none'`, `'"client" => "com.apple.modelcatalogd"'`},
		},
		{name: "three arrows", in: "a => b => c => d", out: []string{"'a => none'", "'b => none'", "'c => d'"}},
		{name: "arrows closing brace", in: "a => b => }", out: []string{"'a => none'", "'b => none'", "}"}},
		{name: "empty assign", in: "properties =", out: []string{"'properties = none'"}},
		{name: "bracketed value", in: "creator = talagentd[69851]", out: []string{"'creator = talagentd[69851]'"}},
		{name: "open brace", in: "services = {", out: []string{"services = {"}},
		{name: "keyed open brace", in: "0 => {", out: []string{"0 => {"}},
		{name: "close brace", in: "}", out: []string{"}"}},
		{name: "open bracket", in: "endpoints = [", out: []string{"endpoints = ["}},
		{name: "close bracket", in: "]", out: []string{"]"}},
		{name: "assign", in: "type = system", out: []string{"'type = system'"}},
		{name: "plain", in: "state = running", out: []string{"'state = running'"}},
		{name: "indented", in: "\t\tflags = 0x1a03  ", out: []string{"'flags = 0x1a03'"}},
		{name: "skipped", in: "BSServiceDomains = {"},
		{name: "blank", in: " \t "},
		{name: "quoted", in: "'already quoted'", out: []string{"'already quoted'"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lines, _ := Lines(tc.in)
			if diff := cmp.Diff(tc.out, texts(lines)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

const sample = `
com.apple.xpc.launchd.domain.system = {
	type = system
	creator = launchd[1]
	environment = {
		PATH => /usr/bin:/bin
		XPC_SERVICE_NAME =>
	}
	properties =
	services = {
		"graphData" => 				"client" => "com.apple.modelcatalogd"
		a => }
	BSServiceDomains = {"x": 1}
	endpoints = [
		0 => {
			name = com.apple.foo
		}
	]
}
`

func TestIdempotent(t *testing.T) {
	once := Fixup(sample)
	twice := Fixup(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("(-once +twice):\n%s", diff)
	}
}

func TestApostropheQuotedAgain(t *testing.T) {
	once := Fixup("name = it's")
	if once != "'name = it's'" {
		t.Fatalf("got %q", once)
	}
	if twice := Fixup(once); twice != "''name = it's''" {
		t.Errorf("got %q", twice)
	}
}

func TestMultiArrowPairs(t *testing.T) {
	for _, in := range []string{
		"a => b => c",
		"a => b => c => d",
		"k0 => k1 => k2 => k3 => k4 => v",
	} {
		count := strings.Count(in, "=>")
		lines, report := Lines(in)
		if len(lines) != count {
			t.Errorf("%q: got %d pairs, want %d", in, len(lines), count)
		}
		if report.Nones != count-1 {
			t.Errorf("%q: got %d none pairs, want %d", in, report.Nones, count-1)
		}
		for _, ln := range lines[:len(lines)-1] {
			if !strings.HasSuffix(ln.Text, " => none'") {
				t.Errorf("%q: %q is not a none pair", in, ln.Text)
			}
		}
	}
}

func TestReport(t *testing.T) {
	in := "\nclient =>\na => b => c\nprops =\nx = {\n}\nBSServiceDomains = {}\n\nplain"
	lines, report := Lines(in)
	want := []Line{
		{Text: "'client => none'", Src: 2},
		{Text: "'a => none'", Src: 3},
		{Text: "'b => c'", Src: 3},
		{Text: "'props = none'", Src: 4},
		{Text: "x = {", Src: 5},
		{Text: "}", Src: 6},
		{Text: "'plain'", Src: 9},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	wantReport := &Report{
		Lines:    9,
		Blank:    2,
		Skipped:  1,
		Arrows:   2,
		Nones:    3,
		Assigns:  1,
		Quoted:   1,
		Passthru: 2,
	}
	if diff := cmp.Diff(wantReport, report); diff != "" {
		t.Errorf("report (-want +got):\n%s", diff)
	}
}

func TestSkipMarkers(t *testing.T) {
	in := "BSServiceDomains = {}\nsecret = 1\nkept = 2"
	got := Fixup(in, SkipMarkers())
	want := "BSServiceDomains = {}\n'secret = 1'\n'kept = 2'"
	if got != want {
		t.Errorf("no markers: got %q, want %q", got, want)
	}
	got = Fixup(in, SkipMarkers("secret", ""))
	want = "BSServiceDomains = {}\n'kept = 2'"
	if got != want {
		t.Errorf("secret: got %q, want %q", got, want)
	}
}
