package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Parse   ParseCmd         `cmd:"" help:"Decode a single TAF line"`
	Check   CheckCmd         `cmd:"" help:"Validate every line of a TAF file"`
	Render  RenderCmd        `cmd:"" help:"Render every valid line of a TAF file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("taf"),
		kong.Description("Decoder for Tarock TAF position notation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
