// Package algokit aggregates independently developed data structure and
// algorithm topic packages behind a single import surface.
//
// Each topic area (collections, heapslice, sortalgo) is a self-contained
// package that can be developed and tested on its own. The algokit package
// re-exports every public symbol those packages provide, so consumers depend
// on one artifact instead of many small ones:
//
//	heap := algokit.NewMinHeap(algokit.Natural[int]())
//	heap.Push(3)
//
// Composition is explicit: every topic declares the symbol names it
// contributes, and a Registry enforces that no two topics export the same
// name. A collision is surfaced as an error naming both topics, never
// silently resolved.
//
// Basic usage:
//
//	reg, err := algokit.New(logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, t := range reg.Topics() {
//		logger.Info("topic available", "name", t.Name, "symbols", len(t.Symbols))
//	}
package algokit

import "fmt"

// New assembles a Registry preloaded with every built-in topic.
// The built-in topics are guaranteed disjoint; an error here means a topic
// declaration was changed without updating the others and should be treated
// as a defect, not a runtime condition.
func New(logger Logger) (*Registry, error) {
	reg := NewRegistry(logger)
	for _, t := range BuiltinTopics() {
		if err := reg.Register(t); err != nil {
			return nil, fmt.Errorf("registering built-in topic %q: %w", t.Name, err)
		}
	}
	return reg, nil
}
