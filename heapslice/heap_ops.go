package heapslice

import "github.com/GoCodeAlone/algokit/collections"

// Core heap operations, written for a root-first comparator: the element
// that orders first under cmp belongs at index 0. The Max view reuses them
// with a reversed comparator.
//
// In a slice of length n, parents occupy [0, n/2) and leaves [n/2, n);
// the children of i are 2i+1 and 2i+2. This holds for n = 0 as well.

// isHeap checks every parent against both children.
func isHeap[T any](s []T, cmp collections.Comparator[T]) bool {
	n := len(s)
	for i := 0; i < n/2; i++ {
		l, r := 2*i+1, 2*i+2
		if l < n && cmp(s[i], s[l]) > 0 {
			return false
		}
		if r < n && cmp(s[i], s[r]) > 0 {
			return false
		}
	}
	return true
}

// singleUp swaps s[*i] with its parent when out of order and reports
// whether a swap happened. Equal elements do not swap.
func singleUp[T any](s []T, i *int, cmp collections.Comparator[T]) bool {
	if *i == 0 {
		return false
	}
	p := (*i - 1) / 2
	if cmp(s[*i], s[p]) >= 0 {
		return false
	}
	s[*i], s[p] = s[p], s[*i]
	*i = p
	return true
}

// singleDown swaps s[*i] with its first-ordering child when out of order
// and reports whether a swap happened.
func singleDown[T any](s []T, i *int, cmp collections.Comparator[T]) bool {
	l, r := 2*(*i)+1, 2*(*i)+2
	first := *i
	if l < len(s) && cmp(s[l], s[first]) < 0 {
		first = l
	}
	if r < len(s) && cmp(s[r], s[first]) < 0 {
		first = r
	}
	if first == *i {
		return false
	}
	s[*i], s[first] = s[first], s[*i]
	*i = first
	return true
}

func moveUp[T any](s []T, i int, cmp collections.Comparator[T]) bool {
	if !singleUp(s, &i, cmp) {
		return false
	}
	for singleUp(s, &i, cmp) {
	}
	return true
}

func moveDown[T any](s []T, i int, cmp collections.Comparator[T]) bool {
	if !singleDown(s, &i, cmp) {
		return false
	}
	for singleDown(s, &i, cmp) {
	}
	return true
}

// heapify arranges s into a heap in O(n) by sifting every parent down,
// last parent first.
func heapify[T any](s []T, cmp collections.Comparator[T]) {
	for i := len(s)/2 - 1; i >= 0; i-- {
		moveDown(s, i, cmp)
	}
}

func pushPop[T any](s []T, x T, cmp collections.Comparator[T]) T {
	if len(s) == 0 || cmp(x, s[0]) <= 0 {
		return x
	}
	root := s[0]
	s[0] = x
	moveDown(s, 0, cmp)
	return root
}

func pop[T any](s []T, cmp collections.Comparator[T]) ([]T, bool) {
	n := len(s)
	if n == 0 {
		return nil, false
	}
	s[0], s[n-1] = s[n-1], s[0]
	rest := s[:n-1]
	moveDown(rest, 0, cmp)
	return rest, true
}

func fix[T any](s []T, i int, cmp collections.Comparator[T]) bool {
	if moveUp(s, i, cmp) {
		return true
	}
	return moveDown(s, i, cmp)
}

// sortHeap orders s into the reverse of cmp's order: heapify, then swap
// the root into the shrinking tail.
func sortHeap[T any](s []T, cmp collections.Comparator[T]) {
	heapify(s, cmp)
	for end := len(s) - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		moveDown(s[:end], 0, cmp)
	}
}
