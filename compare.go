package bi

import (
	"math"

	"github.com/OTheDev/bi/internal/limb"
)

// Cmp returns -1, 0, or +1 according to whether x < y, x == y, or x > y
// (spec §4.6). No allocation: magnitude comparison is a size-then-limb
// walk over the existing slices.
func Cmp(x, y Int) int {
	xSign, ySign := x.Sign(), y.Sign()
	if xSign != ySign {
		if xSign < ySign {
			return -1
		}
		return 1
	}
	if xSign == 0 {
		return 0
	}
	c := cmpAbs(x.mag, y.mag)
	if xSign < 0 {
		return -c
	}
	return c
}

// Eq reports whether x == y.
func Eq(x, y Int) bool { return Cmp(x, y) == 0 }

// Lt reports whether x < y.
func Lt(x, y Int) bool { return Cmp(x, y) < 0 }

// Le reports whether x <= y.
func Le(x, y Int) bool { return Cmp(x, y) <= 0 }

// Gt reports whether x > y.
func Gt(x, y Int) bool { return Cmp(x, y) > 0 }

// Ge reports whether x >= y.
func Ge(x, y Int) bool { return Cmp(x, y) >= 0 }

// CmpInt compares x against a built-in signed or unsigned integer v
// without materializing an Int for v.
func CmpInt[T Integer](x Int, v T) int {
	vNeg := isSignedType[T]() && int64(v) < 0
	u := uint64(v)
	if vNeg {
		u = -uint64(int64(v))
	}
	var buf [64 / limb.WordBits]limb.Word
	n := 0
	for ; u != 0; n++ {
		buf[n] = limb.Word(u)
		u = u >> (limb.WordBits - 1) >> 1
	}
	return Cmp(x, Int{neg: vNeg, mag: buf[:n]})
}

// CmpFloat64 compares x against f, following IEEE-754 ordering: any
// comparison against NaN reports x and f as unordered, surfaced here as
// 2 (spec §4.6) since the -1/0/+1 results have no value for "unordered".
// Callers that need strict three-way semantics should test IsNaN(f)
// themselves before calling CmpFloat64. Unlike ToFloat64-then-compare,
// this decomposes f into its exact mantissa*2^e value and compares
// against x with integer shifts, so no float rounding ever distorts the
// ordering.
func CmpFloat64(x Int, f float64) int {
	if math.IsNaN(f) {
		return 2
	}
	if math.IsInf(f, 1) {
		return -1
	}
	if math.IsInf(f, -1) {
		return 1
	}
	if f == 0 {
		switch {
		case x.IsZero():
			return 0
		case x.IsNegative():
			return -1
		default:
			return 1
		}
	}

	fNeg := f < 0
	xSign, fSign := x.Sign(), 1
	if fNeg {
		fSign = -1
	}
	if xSign != fSign {
		if xSign < fSign {
			return -1
		}
		return 1
	}

	absF := f
	if fNeg {
		absF = -f
	}
	bits := math.Float64bits(absF)
	exp := int((bits >> 52) & 0x7FF)
	mantissa := bits & (1<<52 - 1)
	var mant uint64
	var e int
	if exp == 0 {
		mant = mantissa
		e = -1074
	} else {
		mant = mantissa | (1 << 52)
		e = exp - 1075
	}
	mantInt := FromUint64(mant)

	var c int
	if e >= 0 {
		rhs, err := Lsh(mantInt, e)
		if err != nil {
			// A finite float64's magnitude is always representable.
			panic("bi: unreachable: " + err.Error())
		}
		c = cmpAbs(x.mag, rhs.mag)
	} else {
		lhs, err := Lsh(Int{mag: x.mag}, -e)
		if err != nil {
			// |x| shifted wider than MaxBits: unambiguously larger than
			// any finite float64 magnitude.
			c = 1
		} else {
			c = cmpAbs(lhs.mag, mantInt.mag)
		}
	}
	if xSign < 0 {
		c = -c
	}
	return c
}

// CmpAbs compares |x| and |y|, returning -1, 0, or +1.
func CmpAbs(x, y Int) int { return limb.CmpVV(x.mag, y.mag) }
