package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/ldumpj/parse"
)

const dump = `
graphData = {
	client =>
	com.apple.modelcatalogd =>
}
creator = talagentd[69851]
`

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		cfg  *MainConfig
		in   string
		want string
	}{
		{
			name: "compact",
			cfg:  &MainConfig{},
			in:   dump,
			want: `{"graphData":{"client":null,"com.apple.modelcatalogd":null},"creator":"talagentd[69851]"}` + "\n",
		},
		{
			name: "pretty",
			cfg:  &MainConfig{Pretty: true},
			in:   "a = {\n\tb = 1\n}",
			want: "{\n  \"a\": {\n    \"b\": 1\n  }\n}\n",
		},
		{
			name: "pretty indent",
			cfg:  &MainConfig{Pretty: true, Indent: 1},
			in:   "a = {\n\tb = 1\n}",
			want: "{\n \"a\": {\n  \"b\": 1\n }\n}\n",
		},
		{
			name: "yaml",
			cfg:  &MainConfig{YAML: true, Pretty: true},
			in:   "a = x\nb = 0x10",
			want: "a: x\nb: 16\n",
		},
		{
			name: "fixup",
			cfg:  &MainConfig{Fixup: true},
			in:   dump,
			want: "graphData = {\n'client => none'\n'com.apple.modelcatalogd => none'\n}\n'creator = talagentd[69851]'\n",
		},
		{
			name: "diff",
			cfg:  &MainConfig{Diff: true},
			in:   "a = {\n\tb =>\n}",
			want: "- b =>\n+ 'b => none'\n",
		},
		{
			name: "query",
			cfg:  &MainConfig{Query: `graphData.client == nil`},
			in:   dump,
			want: "true\n",
		},
		{
			name: "skip",
			cfg:  &MainConfig{Skip: []string{"creator"}, SkipSet: true},
			in:   dump,
			want: `{"graphData":{"client":null,"com.apple.modelcatalogd":null}}` + "\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := convert(tc.cfg, buf, strings.NewReader(tc.in)); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestConvertError(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := convert(&MainConfig{}, buf, strings.NewReader("a = {\n'x'\n}\n]"))
	if !errors.Is(err, parse.ErrParse) {
		t.Fatalf("got %v, want a parse error", err)
	}
	if buf.Len() != 0 {
		t.Errorf("partial output %q", buf.String())
	}
}

func TestSkipOpt(t *testing.T) {
	cfg := &MainConfig{}
	if _, err := cfg.skipOpt(nil, "a, b,,"); err != nil {
		t.Fatal(err)
	}
	if !cfg.SkipSet || len(cfg.Skip) != 2 || cfg.Skip[0] != "a" || cfg.Skip[1] != "b" {
		t.Errorf("got %v %v", cfg.SkipSet, cfg.Skip)
	}
}

func TestOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("previous\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{Out: path}
	stdout := bytes.NewBuffer(nil)

	err := output(cfg, stdout, strings.NewReader("a = {\n'x'\n}\n]"))
	if !errors.Is(err, parse.ErrParse) {
		t.Fatalf("got %v, want a parse error", err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "previous\n" {
		t.Errorf("failed conversion changed the file to %q", d)
	}

	if err := output(cfg, stdout, strings.NewReader("a = 1")); err != nil {
		t.Fatal(err)
	}
	d, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `{"a":1}`+"\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if stdout.Len() != 0 {
		t.Errorf("wrote %q to stdout", stdout.String())
	}
}
