package algokit

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The umbrella namespace must expose every symbol the built-in topics
// declare, and the declarations must stay collision-free. The re-export
// file and the Symbols lists are maintained together; these tests catch
// them drifting apart.

func TestBuiltinTopicsAreDisjoint(t *testing.T) {
	reg := NewRegistry(nil)
	for _, topic := range BuiltinTopics() {
		require.NoError(t, reg.Register(topic), "built-in topic %q must register cleanly", topic.Name)
	}
}

func TestBuiltinTopicsAreDocumented(t *testing.T) {
	for _, topic := range BuiltinTopics() {
		assert.NotEmpty(t, topic.Name)
		assert.NotEmpty(t, topic.Summary, "topic %q needs a module-level summary", topic.Name)
		for _, sym := range topic.Symbols {
			assert.NotEmpty(t, sym, "topic %q declares an empty symbol", topic.Name)
		}
	}
}

func TestUmbrellaExposesDeclaredSymbols(t *testing.T) {
	reg, err := New(nil)
	require.NoError(t, err)

	// Spot-check the registry against symbols this package demonstrably
	// re-exports; each is exercised below through the umbrella namespace.
	for _, sym := range []string{"Stack", "MinHeap", "Min", "Max", "Merge", "Radix"} {
		_, err := reg.Lookup(sym)
		assert.NoError(t, err, "symbol %q must be exported", sym)
	}

	assert.Len(t, reg.Symbols(), len(slices.Concat(
		BuiltinTopics()[0].Symbols,
		BuiltinTopics()[1].Symbols,
		BuiltinTopics()[2].Symbols,
	)))
}

// Re-exported symbols must behave exactly as their topic-package
// originals: same types, same semantics.
func TestReexportedCollections(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)
	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	h := NewMinHeap(Natural[int]())
	h.Extend(3, 1, 2)
	top, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, top)

	rh := NewMinHeap(Reverse(Natural[int]()))
	rh.Extend(3, 1, 2)
	top, ok = rh.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, top)
}

func TestReexportedHeapslice(t *testing.T) {
	data := []int{5, 3, 8, 1, 9, 2}
	h := NewMax(Natural[int]())
	h.Heapify(data)
	assert.True(t, h.IsHeap(data))
	assert.Equal(t, 9, data[0])

	h.Sort(data)
	assert.True(t, slices.IsSorted(data))

	low := NewMin(Natural[int]())
	low.Heapify(data)
	assert.Equal(t, 1, data[0])
}

func TestReexportedSorts(t *testing.T) {
	sorts := map[string]func([]int){
		"Insertion":    Insertion[int],
		"Merge":        Merge[int],
		"Quick":        Quick[int],
		"TernaryQuick": TernaryQuick[int],
		"Heap":         Heap[int],
		"Intro":        Intro[int],
	}
	for name, sort := range sorts {
		t.Run(name, func(t *testing.T) {
			data := []int{9, 4, 7, 1, 8, 2, 6, 3, 5, 0}
			sort(data)
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, data)
		})
	}
}

func TestReexportedKeySorts(t *testing.T) {
	words := []string{"ccc", "a", "bb"}
	require.NoError(t, Counting(words, func(s string) int { return len(s) }))
	assert.Equal(t, []string{"a", "bb", "ccc"}, words)

	ints := []int{3, 1, 2}
	require.NoError(t, CountingInts(ints))
	assert.Equal(t, []int{1, 2, 3}, ints)

	err := CountingInts([]int{-1})
	assert.ErrorIs(t, err, ErrNegativeKey)

	data := []uint32{300, 7, 42}
	require.NoError(t, Radix(data,
		func(x uint32) int { return int(x & 0xFF) },
		func(x uint32) int { return int(x >> 8 & 0xFF) },
		func(x uint32) int { return int(x >> 16 & 0xFF) },
		func(x uint32) int { return int(x >> 24 & 0xFF) },
	))
	assert.Equal(t, []uint32{7, 42, 300}, data)
}
