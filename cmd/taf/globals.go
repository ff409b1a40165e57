package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/tarockbots/internal/config"
	"github.com/lox/tarockbots/internal/render"
	"github.com/lox/tarockbots/tarock"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"taf.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	Format   string `short:"f" help:"Output format: text, toml or yaml (overrides config)"`
	NoColor  bool   `help:"Disable styled text output"`
}

// load reads the configuration file and applies command line overrides.
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Format != "" {
		cfg.Output.Format = g.Format
	}
	if g.NoColor {
		off := false
		cfg.Output.Color = &off
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config %s: %w", g.Config, err)
	}

	logger, err := setupLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func writeState(w io.Writer, out *config.OutputConfig, st tarock.GameState) error {
	switch out.Format {
	case config.FormatTOML:
		return render.TOML(w, st)
	case config.FormatYAML:
		return render.YAML(w, st)
	}
	return render.Text(w, st, out.UseColor())
}
