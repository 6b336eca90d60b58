package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/ldumpj/encode"
	"github.com/signadot/ldumpj/eval"
	"github.com/signadot/ldumpj/fixup"
	"github.com/signadot/ldumpj/libdiff"
	"github.com/signadot/ldumpj/parse"
)

func run(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	in := cfg.In
	switch len(args) {
	case 0:
	case 1:
		if in != "" {
			return fmt.Errorf("%w: both -i and a file argument given", cli.ErrUsage)
		}
		in = args[0]
	default:
		return fmt.Errorf("%w: at most one input file", cli.ErrUsage)
	}
	r := cc.In
	if in != "" && in != "-" {
		f, err := os.Open(in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	return output(cfg, cc.Out, r)
}

// output converts r to stdout, or to the -o file when one is given.
func output(cfg *MainConfig, stdout io.Writer, r io.Reader) error {
	if cfg.Out == "" || cfg.Out == "-" {
		return convert(cfg, stdout, r)
	}
	buf := bytes.NewBuffer(nil)
	if err := convert(cfg, buf, r); err != nil {
		return err
	}
	return os.WriteFile(cfg.Out, buf.Bytes(), 0644)
}

// convert reads a dump from r and writes the selected rendition of it to
// w. Nothing is written if the dump does not convert.
func convert(cfg *MainConfig, w io.Writer, r io.Reader) error {
	d, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	text := string(d)
	switch {
	case cfg.Diff:
		return writeDiff(cfg, w, text)
	case cfg.Fixup:
		_, err := io.WriteString(w, fixup.Fixup(text, cfg.fixupOpts()...)+"\n")
		return err
	}

	report := &fixup.Report{}
	node, err := parse.ParseString(text, cfg.parseOpts(report)...)
	if cfg.Verbose {
		logReport(report)
	}
	if err != nil {
		return err
	}
	if cfg.Query != "" {
		node, err = eval.Query(node, cfg.Query)
		if err != nil {
			return err
		}
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// writeDiff writes the lines the normalizer changed. Input lines are
// compared after trimming, so indentation alone is not a change.
func writeDiff(cfg *MainConfig, w io.Writer, text string) error {
	raw := strings.Split(text, "\n")
	for i := range raw {
		raw[i] = strings.TrimSpace(raw[i])
	}
	lines, report := fixup.Lines(text, cfg.fixupOpts()...)
	norm := make([]string, len(lines))
	for i := range lines {
		norm[i] = lines[i].Text
	}
	hunks := libdiff.Lines(strings.Join(raw, "\n")+"\n", strings.Join(norm, "\n")+"\n")
	if cfg.Verbose {
		logReport(report)
		del, ins := libdiff.Changed(hunks)
		theLog.Info("diff", "deleted", del, "inserted", ins)
	}
	return libdiff.Write(w, hunks, false, cfg.useColor(w))
}

func logReport(r *fixup.Report) {
	theLog.Info("fixup",
		"lines", r.Lines,
		"blank", r.Blank,
		"skipped", r.Skipped,
		"arrows", r.Arrows,
		"nones", r.Nones,
		"assigns", r.Assigns,
		"quoted", r.Quoted,
		"passthru", r.Passthru,
	)
}
