package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/tarockbots/internal/config"
	"github.com/lox/tarockbots/internal/fileutil"
	"github.com/lox/tarockbots/internal/render"
)

// RenderCmd writes every valid line of a file. Invalid lines are logged and skipped.
type RenderCmd struct {
	File string `arg:"" name:"file" help:"Path to a file with one TAF line per row ('-' for stdin)"`
	Out  string `short:"o" help:"Write the result to this file instead of stdout"`
}

func (cmd *RenderCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	report, err := checkFile(cmd.File, cfg, logger)
	if err != nil {
		return err
	}
	for _, f := range report.Failures {
		logger.Warn("Skipping invalid line", "line", f.Line, "error", f.Err)
	}

	write := func(w io.Writer) error {
		switch cfg.Output.Format {
		case config.FormatTOML:
			return render.TOMLArchive(w, report.StateLines, report.States)
		case config.FormatYAML:
			return render.YAMLArchive(w, report.StateLines, report.States)
		}
		for i, st := range report.States {
			if _, err := fmt.Fprintf(w, "# line %d\n", report.StateLines[i]); err != nil {
				return err
			}
			if err := render.Text(w, st, cfg.Output.UseColor()); err != nil {
				return err
			}
		}
		return nil
	}

	if cmd.Out == "" {
		return write(os.Stdout)
	}
	return fileutil.WriteAtomic(cmd.Out, 0o644, write)
}
