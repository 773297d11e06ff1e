package algokit

import (
	"cmp"

	"github.com/GoCodeAlone/algokit/collections"
	"github.com/GoCodeAlone/algokit/heapslice"
	"github.com/GoCodeAlone/algokit/sortalgo"
)

// This file is the umbrella re-export surface: every public symbol of
// every built-in topic, under the algokit namespace, with its semantics
// and documentation unchanged. Types are re-exported as aliases; generic
// functions, which cannot be aliased, as thin instantiating forwarders.
//
// All re-exports share this one package namespace, so two topics exporting
// the same name is a compile error here: the collision rule the Registry
// enforces dynamically is enforced statically for the built-in topics.
//
// BuiltinTopics below must list exactly the symbols re-exported here; the
// tests cross-check both against each topic package's own declaration.

// BuiltinTopics returns the descriptors of the topics compiled into the
// library, in dependency order.
func BuiltinTopics() []Topic {
	return []Topic{
		{Name: collections.TopicName, Summary: collections.Summary, Symbols: collections.Symbols()},
		{Name: heapslice.TopicName, Summary: heapslice.Summary, Symbols: heapslice.Symbols()},
		{Name: sortalgo.TopicName, Summary: sortalgo.Summary, Symbols: sortalgo.Symbols()},
	}
}

// Topic: collections

// Comparator carries the comparison logic for a container.
// See collections.Comparator.
type Comparator[T any] = collections.Comparator[T]

// MinHeap is a binary heap whose root is the smallest element according to
// its comparator. See collections.MinHeap.
type MinHeap[T any] = collections.MinHeap[T]

// Stack is a last-in-first-out container. See collections.Stack.
type Stack[T any] = collections.Stack[T]

// Natural returns the comparator for a type's natural order.
func Natural[T cmp.Ordered]() Comparator[T] {
	return collections.Natural[T]()
}

// Reverse returns a comparator with the opposite order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return collections.Reverse(c)
}

// NewMinHeap creates an empty min-heap ordered by cmp.
func NewMinHeap[T any](cmp Comparator[T]) *MinHeap[T] {
	return collections.NewMinHeap(cmp)
}

// MinHeapFromSlice builds a min-heap over data in O(n), taking ownership
// of the slice.
func MinHeapFromSlice[T any](data []T, cmp Comparator[T]) *MinHeap[T] {
	return collections.MinHeapFromSlice(data, cmp)
}

// NewStack creates an empty stack.
func NewStack[T any]() *Stack[T] {
	return collections.NewStack[T]()
}

// Topic: heapslice

// Min is a min-heap view over a caller-owned slice. See heapslice.Min.
type Min[T any] = heapslice.Min[T]

// Max is a max-heap view over a caller-owned slice. See heapslice.Max.
type Max[T any] = heapslice.Max[T]

// NewMin creates a min-heap view ordered by cmp.
func NewMin[T any](cmp Comparator[T]) Min[T] {
	return heapslice.NewMin(cmp)
}

// NewMax creates a max-heap view ordered by cmp.
func NewMax[T any](cmp Comparator[T]) Max[T] {
	return heapslice.NewMax(cmp)
}

// Topic: sortalgo

// ErrNegativeKey is returned by the key-based sorts when a key projection
// yields a negative value.
var ErrNegativeKey = sortalgo.ErrNegativeKey

// Insertion sorts s in natural order using insertion sort.
func Insertion[T cmp.Ordered](s []T) {
	sortalgo.Insertion(s)
}

// InsertionFunc sorts s using insertion sort with the given comparator.
func InsertionFunc[T any](s []T, compare Comparator[T]) {
	sortalgo.InsertionFunc(s, compare)
}

// Merge sorts s in natural order using bottom-up merge sort.
func Merge[T cmp.Ordered](s []T) {
	sortalgo.Merge(s)
}

// MergeFunc sorts s using bottom-up merge sort with the given comparator.
func MergeFunc[T any](s []T, compare Comparator[T]) {
	sortalgo.MergeFunc(s, compare)
}

// Quick sorts s in natural order using quicksort.
func Quick[T cmp.Ordered](s []T) {
	sortalgo.Quick(s)
}

// QuickFunc sorts s using quicksort with the given comparator.
func QuickFunc[T any](s []T, compare Comparator[T]) {
	sortalgo.QuickFunc(s, compare)
}

// TernaryQuick sorts s in natural order using 3-way quicksort.
func TernaryQuick[T cmp.Ordered](s []T) {
	sortalgo.TernaryQuick(s)
}

// TernaryQuickFunc sorts s using 3-way quicksort with the given comparator.
func TernaryQuickFunc[T any](s []T, compare Comparator[T]) {
	sortalgo.TernaryQuickFunc(s, compare)
}

// Heap sorts s in natural order using heapsort.
func Heap[T cmp.Ordered](s []T) {
	sortalgo.Heap(s)
}

// HeapFunc sorts s using heapsort with the given comparator.
func HeapFunc[T any](s []T, compare Comparator[T]) {
	sortalgo.HeapFunc(s, compare)
}

// Intro sorts s in natural order using introsort.
func Intro[T cmp.Ordered](s []T) {
	sortalgo.Intro(s)
}

// IntroFunc sorts s using introsort with the given comparator.
func IntroFunc[T any](s []T, compare Comparator[T]) {
	sortalgo.IntroFunc(s, compare)
}

// Counting sorts s by a non-negative integer key using counting sort.
func Counting[T any](s []T, key func(T) int) error {
	return sortalgo.Counting(s, key)
}

// CountingCached is Counting with each key computed exactly once.
func CountingCached[T any](s []T, key func(T) int) error {
	return sortalgo.CountingCached(s, key)
}

// Integer constrains CountingInts to the built-in integer types.
type Integer = sortalgo.Integer

// CountingInts sorts a slice of non-negative integers directly by value.
func CountingInts[T Integer](s []T) error {
	return sortalgo.CountingInts(s)
}

// Radix sorts s by a sequence of digit projections, least significant
// digit first.
func Radix[T any](s []T, digits ...func(T) int) error {
	return sortalgo.Radix(s, digits...)
}
