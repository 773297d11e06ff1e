package collections

// MinHeap is a binary heap whose root is the smallest element according to
// its comparator. The zero value is not usable; construct with NewMinHeap
// or MinHeapFromSlice.
//
// Invariant: every child orders greater than or equal to its parent.
type MinHeap[T any] struct {
	data []T
	cmp  Comparator[T]
}

// NewMinHeap creates an empty min-heap ordered by cmp.
func NewMinHeap[T any](cmp Comparator[T]) *MinHeap[T] {
	return &MinHeap[T]{cmp: cmp}
}

// MinHeapFromSlice builds a min-heap over data in O(n). The heap takes
// ownership of the slice; the caller must not use it afterwards.
func MinHeapFromSlice[T any](data []T, cmp Comparator[T]) *MinHeap[T] {
	buildHeap(data, cmp)
	return &MinHeap[T]{data: data, cmp: cmp}
}

// Push adds an element to the heap in O(log n).
func (h *MinHeap[T]) Push(v T) {
	h.data = append(h.data, v)
	cur := len(h.data) - 1
	for cur > 0 {
		p := parent(cur)
		if h.cmp(h.data[p], h.data[cur]) <= 0 {
			break
		}
		h.data[p], h.data[cur] = h.data[cur], h.data[p] // pull up
		cur = p
	}
}

// Extend adds multiple elements and restores the heap property with a
// single O(n) rebuild, cheaper than repeated Push for large batches.
func (h *MinHeap[T]) Extend(vs ...T) {
	h.data = append(h.data, vs...)
	buildHeap(h.data, h.cmp)
}

// Pop removes and returns the smallest element in O(log n).
// The second return value is false when the heap is empty.
func (h *MinHeap[T]) Pop() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	end := len(h.data) - 1
	h.data[0], h.data[end] = h.data[end], h.data[0]
	v := h.data[end]
	h.data = h.data[:end]
	siftDown(h.data, h.cmp, 0)
	return v, true
}

// Peek returns the smallest element without removing it.
// The second return value is false when the heap is empty.
func (h *MinHeap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Len returns the number of elements in the heap.
func (h *MinHeap[T]) Len() int {
	return len(h.data)
}

// Empty reports whether the heap has no elements.
func (h *MinHeap[T]) Empty() bool {
	return len(h.data) == 0
}

// The heap tree is stored 0-indexed; the classic algorithm is 1-indexed,
// so the index helpers convert. parent(0) is -1.

func parent(i int) int {
	return ((i + 1) >> 1) - 1
}

func left(i int) int {
	return ((i + 1) << 1) - 1
}

func right(i int) int {
	return (i + 1) << 1
}

// siftDown restores the heap property below index i by pushing the
// element down until both children order after it. O(log n) worst case.
func siftDown[T any](data []T, cmp Comparator[T], i int) {
	for {
		l, r := left(i), right(i)
		s := i
		if l < len(data) && cmp(data[l], data[s]) < 0 {
			s = l
		}
		if r < len(data) && cmp(data[r], data[s]) < 0 {
			s = r
		}
		if s == i {
			return
		}
		data[i], data[s] = data[s], data[i]
		i = s // push down
	}
}

// buildHeap reorders data into a heap tree in O(n). Leaves occupy
// [n/2, n) and are already heaps, so only [0, n/2) needs sifting.
func buildHeap[T any](data []T, cmp Comparator[T]) {
	for i := len(data)/2 - 1; i >= 0; i-- {
		siftDown(data, cmp, i)
	}
}
