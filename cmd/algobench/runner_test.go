package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunnerRunsAndVerifies(t *testing.T) {
	cfg := defaultConfig()
	cfg.Sizes = []int{64, 256}
	cfg.Repetitions = 1

	err := newRunner(cfg, discardLogger()).run()
	assert.NoError(t, err)
}

func TestRunnerRejectsEmptySizes(t *testing.T) {
	cfg := defaultConfig()
	cfg.Sizes = nil

	err := newRunner(cfg, discardLogger()).run()
	assert.ErrorIs(t, err, errNoSizes)
}

func TestRunnerRejectsUnknownAlgorithm(t *testing.T) {
	cfg := defaultConfig()
	cfg.Sizes = []int{16}
	cfg.Algorithms = []string{"bogo"}

	err := newRunner(cfg, discardLogger()).run()
	assert.ErrorIs(t, err, errUnknownAlgorithm)
}

func TestSelectCasesFilters(t *testing.T) {
	cfg := defaultConfig()
	cfg.Algorithms = []string{"intro", "merge"}

	cases, err := newRunner(cfg, discardLogger()).selectCases()
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "intro", cases[0].name)
	assert.Equal(t, "merge", cases[1].name)
}

func TestInsertionSkippedAboveCutoff(t *testing.T) {
	cfg := defaultConfig()
	cfg.Sizes = []int{20_000}
	cfg.Repetitions = 1
	cfg.Algorithms = []string{"insertion"}

	// The only selected case is capped below the requested size, so the
	// run completes without timing anything.
	err := newRunner(cfg, discardLogger()).run()
	assert.NoError(t, err)
}

func TestRandomIntsDeterministic(t *testing.T) {
	a := randomInts(128, 42)
	b := randomInts(128, 42)
	c := randomInts(128, 43)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
