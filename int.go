package bi

import (
	"github.com/OTheDev/bi/internal/bierr"
	"github.com/OTheDev/bi/internal/limb"
)

// Int is an arbitrary-precision signed integer. See the package doc
// comment for the representation invariants.
type Int struct {
	neg bool
	mag []limb.Word
}

// Zero returns the integer 0. Equivalent to the zero value of Int.
func Zero() Int { return Int{} }

// Clone returns an independent, deep copy of x. Plain Go assignment
// (y := x) copies only the slice header and shares x's backing array;
// use Clone when the copy must be safe to mutate independently of x.
func (x Int) Clone() Int {
	if len(x.mag) == 0 {
		return Int{}
	}
	m := make([]limb.Word, len(x.mag))
	copy(m, x.mag)
	return Int{neg: x.neg, mag: m}
}

// Sign returns -1, 0, or +1 according to whether x is negative, zero, or
// positive.
func (x Int) Sign() int {
	if len(x.mag) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool { return x.neg && len(x.mag) > 0 }

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return len(x.mag) == 0 }

// IsEven reports whether x is divisible by 2.
func (x Int) IsEven() bool {
	if len(x.mag) == 0 {
		return true
	}
	return x.mag[0]&1 == 0
}

// IsOdd reports whether x is not divisible by 2.
func (x Int) IsOdd() bool { return !x.IsEven() }

// BitLen returns the bit length of |x|: 0 if x is zero, otherwise
// floor(log2(|x|))+1.
func (x Int) BitLen() int { return limb.BitLen(x.mag) }

// TestBit reports whether bit i (0 = least significant) of |x| is set.
// Addressing is over the magnitude, independent of sign, matching
// SetBit's contract. Panics if i is negative.
func (x Int) TestBit(i int) bool {
	if i < 0 {
		panic("bi: TestBit: negative bit index")
	}
	idx := i / limb.WordBits
	if idx >= len(x.mag) {
		return false
	}
	return (x.mag[idx]>>uint(i%limb.WordBits))&1 != 0
}

// SetBit returns a copy of x with bit i of |x| set. Addressing treats x
// as if it were nonnegative (it operates on the magnitude only); the
// result's sign is x's original sign (so SetBit never turns a negative
// value nonnegative, and never turns zero negative, since a magnitude
// that becomes nonzero makes that explicit).
func (x Int) SetBit(i int) (Int, error) {
	if i < 0 {
		return Int{}, bierr.New(bierr.InvalidArgument, "SetBit: negative bit index %d", i)
	}
	idx := i / limb.WordBits
	if idx >= MaxLimbs {
		return Int{}, bierr.New(bierr.Overflow, "SetBit: bit index %d exceeds MaxBits", i)
	}
	n := idx + 1
	if n < len(x.mag) {
		n = len(x.mag)
	}
	mag, err := resizeMag(nil, n)
	if err != nil {
		return Int{}, err
	}
	copy(mag, x.mag)
	mag[idx] |= limb.Word(1) << uint(i%limb.WordBits)
	mag = limb.Trim(mag)
	return Int{neg: x.neg && len(mag) > 0, mag: mag}, nil
}

// String renders x in base 10, matching the stream-output convenience of
// spec §6: a leading '-' for negative values, no leading '+', no
// thousands separator, "0" for zero.
func (x Int) String() string {
	s, err := x.Text(10)
	if err != nil {
		// Text only fails for bases outside [2,36] or an estimator
		// overflow; base 10 never triggers either.
		panic("bi: unreachable: " + err.Error())
	}
	return s
}
