// Package sortalgo implements a family of in-place sorting algorithms over
// slices.
//
// Every comparison sort comes in two forms: a natural-order variant for
// ordered element types (Insertion, Merge, Quick, ...) and a Func variant
// taking a collections.Comparator (InsertionFunc, MergeFunc, ...). The
// non-comparison sorts (Counting, Radix) order elements by caller-supplied
// integer key projections instead.
//
// The package exists for study and for callers that need a specific
// algorithm's behavior (stability, worst-case bound, key-based ordering);
// for general use the standard library's slices.Sort is the right tool.
package sortalgo

// TopicName identifies this topic area in the umbrella registry.
const TopicName = "sortalgo"

// Summary is the topic's module-level description.
const Summary = "In-place sorting algorithms: comparison, counting and radix sorts"

// Symbols lists the public symbols this package contributes to the
// umbrella namespace.
func Symbols() []string {
	return []string{
		"Insertion",
		"InsertionFunc",
		"Merge",
		"MergeFunc",
		"Quick",
		"QuickFunc",
		"TernaryQuick",
		"TernaryQuickFunc",
		"Heap",
		"HeapFunc",
		"Intro",
		"IntroFunc",
		"Counting",
		"CountingCached",
		"CountingInts",
		"Integer",
		"Radix",
		"ErrNegativeKey",
	}
}
