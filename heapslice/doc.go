// Package heapslice provides binary-heap operations directly on a
// caller-owned slice.
//
// Unlike a heap container, nothing is copied: the slice itself is arranged
// into a heap and every operation works in place. This suits priority
// queues built over existing storage, increase/decrease-key maintenance
// via Fix, and in-place heapsort.
//
// Min and Max are views over the same operations. A view holds only the
// comparator, so it is cheap to construct and safe to copy; comparators
// may close over instance state:
//
//	center := 3
//	h := heapslice.NewMin(func(a, b int) int {
//		return cmp.Compare(abs(a-center), abs(b-center))
//	})
//	h.Heapify(s)
package heapslice

// TopicName identifies this topic area in the umbrella registry.
const TopicName = "heapslice"

// Summary is the topic's module-level description.
const Summary = "In-place binary heap operations over caller-owned slices"

// Symbols lists the public symbols this package contributes to the
// umbrella namespace.
func Symbols() []string {
	return []string{
		"Min",
		"Max",
		"NewMin",
		"NewMax",
	}
}
