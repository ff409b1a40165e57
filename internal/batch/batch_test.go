package batch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/tarockbots/taf"
	"github.com/lox/tarockbots/tarock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ruferStart = ".../...#hdt1t3t5t6k1k2k3k4kbkp/#.........../#.........../#.........../#hkx8t22t21 R1XK-1 1K/T// j -"
	soloDreier = "hkhdhp/t1t2t3#/#/#/#/#t22 SD3--2 /// - -"
)

func TestCheck(t *testing.T) {
	input := strings.Join([]string{
		"# positions from the club evening",
		ruferStart,
		"",
		".../...#/#/#/#/# R1XK- /// j -",
		soloDreier,
		".../...#/#/#/#/# R1XK-1 /// X -",
		"too few fields",
	}, "\n")

	var logs bytes.Buffer
	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)

	checker := NewChecker(2, logger, quartz.NewMock(t))
	report, err := checker.Check(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 2, report.Valid)
	assert.Equal(t, 3, report.Invalid())
	assert.Equal(t, time.Duration(0), report.Elapsed)

	require.Len(t, report.Failures, 3)
	assert.Equal(t, 4, report.Failures[0].Line)
	assert.True(t, errors.Is(report.Failures[0], taf.ErrInvalidContractGroup))
	assert.Equal(t, 6, report.Failures[1].Line)
	assert.True(t, errors.Is(report.Failures[1], taf.ErrInvalidFlag))
	assert.Equal(t, 7, report.Failures[2].Line)
	assert.True(t, errors.Is(report.Failures[2], taf.ErrMissingGroups))
	assert.Equal(t, "too few fields", report.Failures[2].Text)
	assert.Contains(t, report.Failures[2].Error(), "line 7: missing groups")

	require.Len(t, report.States, 2)
	assert.Equal(t, []int{2, 5}, report.StateLines)
	assert.True(t, report.States[0].Equal(taf.MustParse(ruferStart)))
	assert.Equal(t, tarock.ContractSD, report.States[1].Players[2].Calls.Contract)

	assert.Contains(t, logs.String(), "batch")
	assert.Contains(t, logs.String(), "Invalid line")
}

func TestCheckEmptyInput(t *testing.T) {
	checker := NewChecker(4, nil, quartz.NewMock(t))
	report, err := checker.Check(context.Background(), strings.NewReader("\n\n# nothing here\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Empty(t, report.Failures)
	assert.Empty(t, report.States)
}

func TestCheckManyLinesKeepsOrder(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		if i%10 == 0 {
			b.WriteString("bad line\n")
			continue
		}
		b.WriteString(ruferStart + "\n")
	}

	checker := NewChecker(8, log.New(io.Discard), quartz.NewMock(t))
	report, err := checker.Check(context.Background(), strings.NewReader(b.String()))
	require.NoError(t, err)

	assert.Equal(t, 200, report.Total)
	assert.Equal(t, 180, report.Valid)
	require.Len(t, report.Failures, 20)
	for i, f := range report.Failures {
		assert.Equal(t, i*10+1, f.Line)
	}
}

func TestCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := NewChecker(1, nil, quartz.NewMock(t))
	_, err := checker.Check(ctx, strings.NewReader(ruferStart+"\n"+ruferStart))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckLineTooLong(t *testing.T) {
	input := strings.Join([]string{
		strings.Repeat(".", maxLineSize+1),
		ruferStart,
		"# " + strings.Repeat("x", 3*maxLineSize),
		strings.Repeat("hk", maxLineSize),
	}, "\n")

	checker := NewChecker(2, nil, quartz.NewMock(t))
	report, err := checker.Check(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Valid)
	assert.Equal(t, []int{2}, report.StateLines)
	require.Len(t, report.Failures, 2)

	assert.Equal(t, 1, report.Failures[0].Line)
	assert.ErrorIs(t, report.Failures[0], ErrLineTooLong)
	assert.Len(t, report.Failures[0].Text, previewSize)

	assert.Equal(t, 4, report.Failures[1].Line)
	assert.ErrorIs(t, report.Failures[1], ErrLineTooLong)
}

func TestCheckLineAtLimit(t *testing.T) {
	line := ".../...#/#/#/#/# R1XK-1 /// j " + strings.Repeat("-", maxLineSize-30)
	require.Len(t, line, maxLineSize)

	checker := NewChecker(1, nil, quartz.NewMock(t))
	report, err := checker.Check(context.Background(), strings.NewReader(line+"\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Valid)
	assert.Empty(t, report.Failures)
}
