package sortalgo

import (
	"fmt"
)

// Integer constrains CountingInts to the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Counting sorts s by a non-negative integer key using counting sort.
// Stable, O(n + k) where k is the largest key.
//
// The key function is evaluated twice per element; use CountingCached when
// the key is expensive to compute. If any key is negative, an error
// wrapping ErrNegativeKey is returned and s is left unchanged.
func Counting[T any](s []T, key func(T) int) error {
	counts, err := makeCounter(s, key)
	if err != nil {
		return err
	}

	out := make([]T, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		k := key(s[i])
		counts[k]--
		out[counts[k]] = s[i]
	}
	copy(s, out)
	return nil
}

// CountingCached is Counting with each key computed exactly once and
// cached, trading an O(n) key buffer for repeated key evaluation.
func CountingCached[T any](s []T, key func(T) int) error {
	keys := make([]int, len(s))
	maxKey := 0
	for i, v := range s {
		k := key(v)
		if k < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeKey, k)
		}
		keys[i] = k
		if k > maxKey {
			maxKey = k
		}
	}
	if len(s) <= 1 {
		return nil
	}

	counts := make([]int, maxKey+1)
	for _, k := range keys {
		counts[k]++
	}
	accumulate(counts)

	out := make([]T, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		counts[keys[i]]--
		out[counts[keys[i]]] = s[i]
	}
	copy(s, out)
	return nil
}

// CountingInts sorts a slice of integers directly by value.
// If any value is negative, an error wrapping ErrNegativeKey is returned
// and s is left unchanged.
func CountingInts[T Integer](s []T) error {
	var maxVal T
	for _, v := range s {
		if v < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeKey, int64(v))
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if len(s) <= 1 {
		return nil
	}

	counts := make([]int, int(maxVal)+1)
	for _, v := range s {
		counts[v]++
	}

	// Values carry no payload, so rebuilding from counts suffices.
	idx := 0
	for k, c := range counts {
		for ; c > 0; c-- {
			s[idx] = T(k)
			idx++
		}
	}
	return nil
}

// makeCounter validates keys and returns the cumulative count table.
// The slice is untouched when an error is returned.
func makeCounter[T any](s []T, key func(T) int) ([]int, error) {
	var counts []int
	for _, v := range s {
		k := key(v)
		if k < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeKey, k)
		}
		for k >= len(counts) {
			counts = append(counts, 0)
		}
		counts[k]++
	}
	accumulate(counts)
	return counts, nil
}

// accumulate turns per-key counts into cumulative end positions.
func accumulate(counts []int) {
	sum := 0
	for i, c := range counts {
		sum += c
		counts[i] = sum
	}
}
