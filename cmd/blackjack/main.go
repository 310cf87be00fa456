package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version       kong.VersionFlag `short:"v" help:"Show version"`
	Run           RunCmd           `cmd:"" default:"withargs" help:"Run a simulation"`
	CheckStrategy CheckStrategyCmd `cmd:"check-strategy" help:"Validate a strategy CSV file"`
	Profiles      ProfilesCmd      `cmd:"" help:"List built-in casino rule profiles"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Rule-driven blackjack simulator for statistical analysis"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
