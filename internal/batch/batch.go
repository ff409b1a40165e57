// Package batch validates files of TAF lines in parallel.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/tarockbots/taf"
	"github.com/lox/tarockbots/tarock"
	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds a single notation line; a full deck in every pile fits easily.
const maxLineSize = 64 * 1024

// previewSize is how much of an over-long line is kept in its LineError.
const previewSize = 64

// ErrLineTooLong is reported for an input line longer than maxLineSize bytes.
var ErrLineTooLong = errors.New("line too long")

// LineError is a line that failed to parse.
type LineError struct {
	Line int // 1-based line number in the input
	Text string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// Report summarizes a checked input.
type Report struct {
	Total    int
	Valid    int
	Failures []LineError // ordered by line number
	Elapsed  time.Duration

	// States holds every successfully parsed state in input order and
	// StateLines the line number each one came from.
	States     []tarock.GameState
	StateLines []int
}

// Invalid returns the number of lines that failed.
func (r *Report) Invalid() int {
	return len(r.Failures)
}

// Checker parses many lines concurrently.
type Checker struct {
	workers int
	logger  *log.Logger
	clock   quartz.Clock
}

// NewChecker creates a checker running at most workers parsers at once.
func NewChecker(workers int, logger *log.Logger, clock quartz.Clock) *Checker {
	if workers < 1 {
		workers = 1
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Checker{
		workers: workers,
		logger:  logger.WithPrefix("batch"),
		clock:   clock,
	}
}

type entry struct {
	line int
	text string
	err  error
}

type result struct {
	state tarock.GameState
	err   error
}

// Check reads r line by line, skipping blank lines and lines starting with
// '#', and parses each remaining line. Parse failures and lines longer than
// 64 KiB are collected in the report; only read errors and cancellation are
// returned as errors.
func (c *Checker) Check(ctx context.Context, r io.Reader) (*Report, error) {
	start := c.clock.Now()

	entries, err := readEntries(r)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Read input", "lines", len(entries), "workers", c.workers)

	results := make([]result, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, e := range entries {
		if e.err != nil {
			results[i] = result{err: e.err}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := taf.Parse(e.text)
			results[i] = result{state: st, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Total: len(entries)}
	for i, res := range results {
		if res.err != nil {
			lineErr := LineError{Line: entries[i].line, Text: entries[i].text, Err: res.err}
			c.logger.Debug("Invalid line", "line", lineErr.Line, "error", res.err)
			report.Failures = append(report.Failures, lineErr)
			continue
		}
		report.Valid++
		report.States = append(report.States, res.state)
		report.StateLines = append(report.StateLines, entries[i].line)
	}
	report.Elapsed = c.clock.Since(start)

	c.logger.Info("Checked input",
		"total", report.Total,
		"valid", report.Valid,
		"invalid", report.Invalid(),
		"elapsed", report.Elapsed)
	return report, nil
}

func readEntries(r io.Reader) ([]entry, error) {
	br := bufio.NewReader(r)

	var entries []entry
	n := 0
	for {
		raw, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		n++

		text := strings.TrimSpace(string(raw))
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if tooLong {
			entries = append(entries, entry{
				line: n,
				text: text[:min(len(text), previewSize)],
				err:  fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, maxLineSize),
			})
			continue
		}
		entries = append(entries, entry{line: n, text: text})
	}
	return entries, nil
}

// readLine returns the next line without its terminator. A line longer than
// maxLineSize is consumed whole but only its first maxLineSize bytes are
// returned, with tooLong set.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, rerr := br.ReadLine()
		if rerr != nil {
			if rerr == io.EOF && (len(line) > 0 || tooLong) {
				return line, tooLong, nil
			}
			return nil, false, rerr
		}
		if room := maxLineSize - len(line); len(chunk) > room {
			chunk = chunk[:room]
			tooLong = true
		}
		line = append(line, chunk...)
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}
