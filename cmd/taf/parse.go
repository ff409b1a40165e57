package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/tarockbots/internal/fileutil"
	"github.com/lox/tarockbots/taf"
)

// ParseCmd decodes one line given as an argument or on stdin.
type ParseCmd struct {
	Line string `arg:"" optional:"" help:"TAF line (read from stdin when omitted)"`
	Out  string `short:"o" help:"Write the result to this file instead of stdout"`

	stdin io.Reader
}

func (cmd *ParseCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	line := cmd.Line
	if line == "" {
		in := cmd.stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		line = strings.TrimSpace(string(data))
	}
	if line == "" {
		return errors.New("parse requires a TAF line")
	}

	st, err := taf.Parse(line)
	if err != nil {
		return err
	}
	logger.Debug("Parsed line", "declarers", st.Declarers())

	if cmd.Out == "" {
		return writeState(os.Stdout, cfg.Output, st)
	}
	err = fileutil.WriteAtomic(cmd.Out, 0o644, func(w io.Writer) error {
		return writeState(w, cfg.Output, st)
	})
	if err != nil {
		return err
	}
	logger.Info("Wrote state", "file", cmd.Out, "format", cfg.Output.Format)
	return nil
}
