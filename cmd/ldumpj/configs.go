package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/ldumpj/encode"
	"github.com/signadot/ldumpj/fixup"
	"github.com/signadot/ldumpj/format"
	"github.com/signadot/ldumpj/parse"
)

type MainConfig struct {
	In      string `cli:"name=i aliases=input desc='input file (default stdin)'"`
	Pretty  bool   `cli:"name=p aliases=pretty desc='indent the output'"`
	Indent  int    `cli:"name=indent desc='spaces per level for -p (default 2)'"`
	YAML    bool   `cli:"name=y aliases=yaml desc='encode as yaml'"`
	Color   bool   `cli:"name=color desc='encode with color'"`
	Fixup   bool   `cli:"name=fixup desc='write the normalized text instead of converting'"`
	Diff    bool   `cli:"name=d aliases=diff desc='write the lines changed by normalization instead of converting'"`
	Query   string `cli:"name=q aliases=query desc='expr-lang expression computing the output from the document'"`
	Verbose bool   `cli:"name=v desc='log normalization statistics'"`

	Skip    []string
	SkipSet bool

	Out string

	Main *cli.Command
}

// outOpt only records the path. The file is written once the conversion
// has succeeded, so a failure leaves an existing file alone.
func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	cfg.Out = a
	return a, nil
}

func (cfg *MainConfig) skipOpt(_ *cli.Context, a string) (any, error) {
	cfg.SkipSet = true
	cfg.Skip = nil
	for _, m := range strings.Split(a, ",") {
		if m = strings.TrimSpace(m); m != "" {
			cfg.Skip = append(cfg.Skip, m)
		}
	}
	return cfg.Skip, nil
}

func (cfg *MainConfig) fixupOpts() []fixup.Option {
	if !cfg.SkipSet {
		return nil
	}
	return []fixup.Option{fixup.SkipMarkers(cfg.Skip...)}
}

func (cfg *MainConfig) parseOpts(report *fixup.Report) []parse.ParseOption {
	res := []parse.ParseOption{parse.WithReport(report)}
	if cfg.SkipSet {
		res = append(res, parse.SkipMarkers(cfg.Skip...))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := format.JSONFormat
	if cfg.YAML {
		fmat = format.YAMLFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(!cfg.Pretty),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.useColor(w) && !cfg.YAML {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether w gets colored output: always with -color,
// never with -color=false, otherwise when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
