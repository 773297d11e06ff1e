package sortalgo

import (
	"fmt"
)

// Radix sorts s by a sequence of digit projections using LSD radix sort:
// one stable counting pass per projection, least significant digit first.
//
// A projection maps an element to one non-negative digit of its key. For a
// uint32-like key in 4-bit digits:
//
//	err := sortalgo.Radix(s,
//		func(x uint32) int { return int(x & 0xF) },
//		func(x uint32) int { return int(x >> 4 & 0xF) },
//		func(x uint32) int { return int(x >> 8 & 0xF) },
//		...)
//
// Stability of the per-digit passes makes the composite order correct.
// With no projections, s is left unchanged. A negative digit aborts with
// an error wrapping ErrNegativeKey; passes already applied remain.
func Radix[T any](s []T, digits ...func(T) int) error {
	for i, digit := range digits {
		if err := CountingCached(s, digit); err != nil {
			return fmt.Errorf("radix digit %d: %w", i, err)
		}
	}
	return nil
}
