package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/tarockbots/internal/batch"
	"github.com/lox/tarockbots/internal/config"
)

// CheckCmd validates a file of TAF lines.
type CheckCmd struct {
	File string `arg:"" name:"file" help:"Path to a file with one TAF line per row ('-' for stdin)"`

	stdout io.Writer
}

func (cmd *CheckCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	report, err := checkFile(cmd.File, cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.stdout
	if out == nil {
		out = os.Stdout
	}
	for _, f := range report.Failures {
		fmt.Fprintf(out, "%s:%s\n", cmd.File, f.Error())
	}
	fmt.Fprintf(out, "%d lines, %d valid, %d invalid\n", report.Total, report.Valid, report.Invalid())

	if report.Invalid() > 0 {
		return fmt.Errorf("%d invalid lines in %s", report.Invalid(), cmd.File)
	}
	return nil
}

// checkFile runs the batch checker over path, cancelling on SIGINT/SIGTERM.
func checkFile(path string, cfg *config.Config, logger *log.Logger) (*batch.Report, error) {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	checker := batch.NewChecker(cfg.Workers, logger, quartz.NewReal())
	return checker.Check(ctx, in)
}
