package main

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// setupLogger creates the command logger writing to w at the named level.
func setupLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "taf",
	}), nil
}
