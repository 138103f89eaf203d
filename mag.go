package bi

import (
	"github.com/OTheDev/bi/internal/bierr"
	"github.com/OTheDev/bi/internal/limb"
)

// reserveMag allocates a zero-length slice with capacity n, failing with
// Overflow if n exceeds MaxLimbs (spec §4.1's reserve(cap)).
func reserveMag(n int) ([]limb.Word, error) {
	if n < 0 {
		n = 0
	}
	if n > MaxLimbs {
		return nil, bierr.New(bierr.Overflow, "requested %d limbs exceeds MaxLimbs (%d)", n, MaxLimbs)
	}
	return make([]limb.Word, 0, n), nil
}

// resizeMag returns a slice of length n built from z's existing content,
// allocating a fresh backing array only if z's capacity is insufficient.
// Newly added limbs are left as zero (Go's zero value), which satisfies
// §4.1's "callers always overwrite before reading" contract trivially.
func resizeMag(z []limb.Word, n int) ([]limb.Word, error) {
	if n <= cap(z) {
		out := z[:n]
		for i := len(z); i < n; i++ {
			out[i] = 0
		}
		return out, nil
	}
	grown, err := reserveMag(n)
	if err != nil {
		return nil, err
	}
	grown = grown[:n]
	copy(grown, z)
	return grown, nil
}

// cmpAbs compares two trimmed magnitudes MSB-down (spec §4.2).
func cmpAbs(x, y []limb.Word) int { return limb.CmpVV(x, y) }

// normSign forces the sign to positive when the magnitude is empty,
// enforcing invariant 2 of spec §3.
func normSign(neg bool, mag []limb.Word) bool { return neg && len(mag) > 0 }
