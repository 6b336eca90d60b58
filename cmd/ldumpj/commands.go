package main

import (
	"github.com/scott-cotton/cli"
)

const description = `ldumpj converts the output of launchctl dumpstate and launchctl print
into JSON.

The input is read from -i (default stdin) and the result written to -o
(default stdout). Malformed lines are repaired before parsing; use -fixup
to see the repaired text and -d to see what was changed.`

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Aliases:     []string{"output"},
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "skip",
			Description: "comma separated markers of sub-domains to drop (default BSServiceDomains)",
			Type:        cli.NamedFuncOpt(cfg.skipOpt, "(markers)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ldumpj").
		WithSynopsis("ldumpj [opts] [file]").
		WithDescription(description).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}
