package sortalgo

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountingInts(t *testing.T) {
	data := []int{4, 2, 2, 8, 3, 3, 1}
	require.NoError(t, CountingInts(data))
	assert.Equal(t, []int{1, 2, 2, 3, 3, 4, 8}, data)
}

func TestCountingIntsNegative(t *testing.T) {
	data := []int{4, 2, -2, 8, 3, -3, 1}
	err := CountingInts(data)

	require.ErrorIs(t, err, ErrNegativeKey)
	assert.Equal(t, []int{4, 2, -2, 8, 3, -3, 1}, data, "failed sort must not mutate")
}

func TestCountingIntsUnsigned(t *testing.T) {
	data := []uint8{200, 3, 255, 0, 3}
	require.NoError(t, CountingInts(data))
	assert.Equal(t, []uint8{0, 3, 3, 200, 255}, data)
}

func TestCountingByKey(t *testing.T) {
	words := []string{"counting", "hello", "sort____", "a", "world", "is______", "lamp", "bb", "stable__", "ccc"}
	want := []string{"a", "bb", "ccc", "lamp", "hello", "world", "counting", "sort____", "is______", "stable__"}

	require.NoError(t, Counting(words, func(s string) int { return len(s) }))
	assert.Equal(t, want, words, "stable sort by length keeps ties in input order")
}

func TestCountingNegativeKey(t *testing.T) {
	data := []int{1, 2, 3}
	err := Counting(data, func(v int) int { return v - 2 })

	require.ErrorIs(t, err, ErrNegativeKey)
	assert.Equal(t, []int{1, 2, 3}, data)
}

func TestCountingCached(t *testing.T) {
	vowels := func(s string) int {
		return strings.Count(strings.ToLower(s), "a") +
			strings.Count(strings.ToLower(s), "e") +
			strings.Count(strings.ToLower(s), "i") +
			strings.Count(strings.ToLower(s), "o") +
			strings.Count(strings.ToLower(s), "u")
	}

	words := []string{"counting", "hello", "sort", "a", "world", "is", "lamp", "bb", "stable", "ccc"}
	want := []string{"bb", "ccc", "sort", "a", "world", "is", "lamp", "hello", "stable", "counting"}

	require.NoError(t, CountingCached(words, vowels))
	assert.Equal(t, want, words)
}

func TestCountingEmpty(t *testing.T) {
	var data []int
	require.NoError(t, Counting(data, func(v int) int { return v }))
	require.NoError(t, CountingCached(data, func(v int) int { return v }))
	require.NoError(t, CountingInts(data))
}

func TestRadixUint32(t *testing.T) {
	data := []uint32{0x12345678, 0, 0xFFFFFFFF, 42, 17, 0xDEADBEEF}
	want := slices.Clone(data)
	slices.Sort(want)

	digits := make([]func(uint32) int, 8)
	for d := range digits {
		shift := 4 * d
		digits[d] = func(x uint32) int { return int(x >> shift & 0xF) }
	}

	require.NoError(t, Radix(data, digits...))
	assert.Equal(t, want, data)
}

func TestRadixNoDigits(t *testing.T) {
	data := []int{3, 1, 2}
	require.NoError(t, Radix(data))
	assert.Equal(t, []int{3, 1, 2}, data)
}

func TestRadixNegativeDigit(t *testing.T) {
	data := []int{3, 1, 2}
	err := Radix(data, func(v int) int { return -v })
	require.ErrorIs(t, err, ErrNegativeKey)
}
