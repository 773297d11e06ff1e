// Package collections implements general-purpose container types built
// around explicit comparators.
//
// Instead of requiring element types to be ordered, containers in this
// package take a Comparator that carries the comparison logic itself. The
// same element type can therefore back differently ordered containers, and
// types without a natural order need no wrapper to participate.
package collections

// TopicName identifies this topic area in the umbrella registry.
const TopicName = "collections"

// Summary is the topic's module-level description.
const Summary = "Comparator-driven container types: binary min-heap and stack"

// Symbols lists the public symbols this package contributes to the
// umbrella namespace.
func Symbols() []string {
	return []string{
		"Comparator",
		"Natural",
		"Reverse",
		"MinHeap",
		"NewMinHeap",
		"MinHeapFromSlice",
		"Stack",
		"NewStack",
	}
}
