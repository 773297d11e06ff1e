package heapslice

import "github.com/GoCodeAlone/algokit/collections"

// Min is a min-heap view: operations arrange the slice so the element that
// orders first under the comparator sits at index 0.
type Min[T any] struct {
	cmp collections.Comparator[T]
}

// NewMin creates a min-heap view ordered by cmp.
func NewMin[T any](cmp collections.Comparator[T]) Min[T] {
	return Min[T]{cmp: cmp}
}

// IsHeap reports whether s satisfies the min-heap property.
func (h Min[T]) IsHeap(s []T) bool {
	return isHeap(s, h.cmp)
}

// Heapify arranges s into a min-heap in O(n).
func (h Min[T]) Heapify(s []T) {
	heapify(s, h.cmp)
}

// PushPop pushes x and pops the minimum in a single O(log n) pass.
// If x orders before the current root (or s is empty), x is returned
// unchanged and the heap is untouched.
func (h Min[T]) PushPop(s []T, x T) T {
	return pushPop(s, x, h.cmp)
}

// Pop removes the minimum from the heap. The popped element is moved to
// s[len(s)-1] and the shortened heap s[:len(s)-1] is returned. The second
// return value is false when s is empty.
func (h Min[T]) Pop(s []T) ([]T, bool) {
	return pop(s, h.cmp)
}

// Fix restores the heap property after the element at index i changed,
// moving it up or down as needed. It reports whether the element moved.
func (h Min[T]) Fix(s []T, i int) bool {
	return fix(s, i, h.cmp)
}

// Sort heap-sorts s into descending order. A min-heap surrenders its
// smallest element first, so repeatedly swapping the root to the shrinking
// tail yields the reverse of the comparator's order.
func (h Min[T]) Sort(s []T) {
	sortHeap(s, h.cmp)
}

// Max is a max-heap view: operations arrange the slice so the element that
// orders last under the comparator sits at index 0.
//
// Internally Max is Min over the reversed comparator.
type Max[T any] struct {
	cmp collections.Comparator[T]
}

// NewMax creates a max-heap view ordered by cmp.
func NewMax[T any](cmp collections.Comparator[T]) Max[T] {
	return Max[T]{cmp: collections.Reverse(cmp)}
}

// IsHeap reports whether s satisfies the max-heap property.
func (h Max[T]) IsHeap(s []T) bool {
	return isHeap(s, h.cmp)
}

// Heapify arranges s into a max-heap in O(n).
func (h Max[T]) Heapify(s []T) {
	heapify(s, h.cmp)
}

// PushPop pushes x and pops the maximum in a single O(log n) pass.
// If x orders after the current root (or s is empty), x is returned
// unchanged and the heap is untouched.
func (h Max[T]) PushPop(s []T, x T) T {
	return pushPop(s, x, h.cmp)
}

// Pop removes the maximum from the heap. The popped element is moved to
// s[len(s)-1] and the shortened heap s[:len(s)-1] is returned. The second
// return value is false when s is empty.
func (h Max[T]) Pop(s []T) ([]T, bool) {
	return pop(s, h.cmp)
}

// Fix restores the heap property after the element at index i changed,
// moving it up or down as needed. It reports whether the element moved.
func (h Max[T]) Fix(s []T, i int) bool {
	return fix(s, i, h.cmp)
}

// Sort heap-sorts s into ascending order: the classic heapsort.
func (h Max[T]) Sort(s []T) {
	sortHeap(s, h.cmp)
}
