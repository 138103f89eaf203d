//go:build bi_word32

package limb

import "math/bits"

// Word is a single limb of a magnitude: an unsigned integer in [0, B).
// This build tag selects a narrower 32-bit limb, useful for exercising the
// multi-limb kernels (Knuth D in particular) on a 64-bit host without
// needing operands wide enough to force multi-limb behavior at 64 bits.
type Word = uint32

// WordBits is W, the bit width of a single limb.
const WordBits = 32

func addWW(x, y, carry Word) (sum, carryOut Word) {
	return bits.Add32(x, y, carry)
}

func subWW(x, y, borrow Word) (diff, borrowOut Word) {
	return bits.Sub32(x, y, borrow)
}

func mulWW(x, y Word) (hi, lo Word) {
	return bits.Mul32(x, y)
}

func divWW(hi, lo, y Word) (quo, rem Word) {
	return bits.Div32(hi, lo, y)
}

func leadingZeros(x Word) int {
	return bits.LeadingZeros32(x)
}

func bitLenWord(x Word) int {
	return bits.Len32(x)
}
