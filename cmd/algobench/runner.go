package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/GoCodeAlone/algokit"
)

var (
	errResultNotSorted         = errors.New("algorithm produced unsorted output")
	errUnknownAlgorithm        = errors.New("unknown algorithm in config")
	errNoSizes                 = errors.New("config must list at least one input size")
	errUnsupportedConfigFormat = errors.New("unsupported config file format")
)

// benchCase is one algorithm under test. All algorithms are reached
// through the umbrella namespace, so the suite exercises the re-export
// surface, not the topic packages directly.
type benchCase struct {
	name string
	run  func([]int)

	// maxSize caps the input length; 0 means unlimited.
	maxSize int
}

func suite(insertionCutoff int) []benchCase {
	return []benchCase{
		{name: "insertion", run: algokit.Insertion[int], maxSize: insertionCutoff},
		{name: "merge", run: algokit.Merge[int]},
		{name: "heap", run: algokit.Heap[int]},
		{name: "quick", run: algokit.Quick[int]},
		{name: "ternary-quick", run: algokit.TernaryQuick[int]},
		{name: "intro", run: algokit.Intro[int]},
		{name: "slices.Sort", run: func(s []int) { slices.Sort(s) }},
	}
}

type runner struct {
	cfg    config
	logger *slog.Logger
}

func newRunner(cfg config, logger *slog.Logger) *runner {
	return &runner{cfg: cfg, logger: logger}
}

// run times every selected algorithm at every configured size and
// verifies each result. The whole run shares one deterministic input
// pool, so algorithms sort identical data.
func (r *runner) run() error {
	if len(r.cfg.Sizes) == 0 {
		return errNoSizes
	}
	cases, err := r.selectCases()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	r.logger.Info("Starting benchmark suite",
		"run", runID, "seed", r.cfg.Seed, "sizes", r.cfg.Sizes, "repetitions", r.cfg.Repetitions)

	base := randomInts(slices.Max(r.cfg.Sizes), r.cfg.Seed)
	scratch := make([]int, len(base))

	for _, size := range r.cfg.Sizes {
		for _, c := range cases {
			if c.maxSize != 0 && size > c.maxSize {
				continue
			}

			best := time.Duration(-1)
			for rep := 0; rep < max(r.cfg.Repetitions, 1); rep++ {
				data := scratch[:size]
				copy(data, base[:size])

				start := time.Now()
				c.run(data)
				elapsed := time.Since(start)

				if !slices.IsSorted(data) {
					return fmt.Errorf("%w: %s at size %d", errResultNotSorted, c.name, size)
				}
				if best < 0 || elapsed < best {
					best = elapsed
				}
			}

			r.logger.Info("Benchmark result",
				"run", runID, "algorithm", c.name, "size", size, "best", best)
		}
	}

	r.logger.Info("Benchmark suite complete", "run", runID)
	return nil
}

// selectCases applies the config's algorithm filter.
func (r *runner) selectCases() ([]benchCase, error) {
	all := suite(r.cfg.InsertionCutoff)
	if len(r.cfg.Algorithms) == 0 {
		return all, nil
	}

	byName := make(map[string]benchCase, len(all))
	for _, c := range all {
		byName[c.name] = c
	}

	selected := make([]benchCase, 0, len(r.cfg.Algorithms))
	for _, name := range r.cfg.Algorithms {
		c, exists := byName[name]
		if !exists {
			return nil, fmt.Errorf("%w: %s", errUnknownAlgorithm, name)
		}
		selected = append(selected, c)
	}
	return selected, nil
}

func randomInts(n int, seed uint64) []int {
	rng := rand.New(rand.NewPCG(seed, 0))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Int()
	}
	return data
}
