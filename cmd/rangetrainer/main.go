package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals `embed:""`

	Version  kong.VersionFlag `help:"Show version"`
	Chart    ChartCmd         `cmd:"" help:"Print the chart for a seat and scenario"`
	Stats    StatsCmd         `cmd:"" help:"Summarise every chart in the catalog"`
	Hand     HandCmd          `cmd:"" help:"Show what every chart does with one hand"`
	Random   RandomCmd        `cmd:"" help:"Deal random starting hands"`
	Quiz     QuizCmd          `cmd:"" default:"1" help:"Drill a chart interactively"`
	Validate ValidateCmd      `cmd:"" help:"Check the built-in catalog and config file"`
	Export   ExportCmd        `cmd:"" help:"Write every chart as JSON, one file per table size"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rangetrainer"),
		kong.Description("Preflop range charts and a quiz to learn them"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(sigCtx, cli.Globals, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
