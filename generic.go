package bi

import (
	"unsafe"

	"github.com/OTheDev/bi/internal/limb"
)

// Integer is the set of built-in integer types Int can losslessly
// construct from, and wrap-convert to (spec §4.8, §6).
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// isSignedType reports whether T is one of the signed Integer kinds.
// T(0)-1 underflows to T's maximum value for an unsigned T, which is
// never less than the zero value; for a signed T it is simply -1.
func isSignedType[T Integer]() bool {
	var z T
	return z-1 < 0
}

func bitsOf[T Integer]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// FromInt constructs an Int equal to v, for any built-in integer type
// (spec §4.8: "From integer T").
func FromInt[T Integer](v T) Int {
	if isSignedType[T]() {
		return fromInt64(int64(v))
	}
	return fromUint64(uint64(v))
}

func fromInt64(v int64) Int {
	if v == 0 {
		return Int{}
	}
	if v > 0 {
		return fromUint64(uint64(v))
	}
	var u uint64
	if v == minInt64 {
		// Negating math.MinInt64 overflows back to itself in two's
		// complement; its raw bit pattern already equals the correct
		// magnitude (2^63).
		u = uint64(v)
	} else {
		u = uint64(-v)
	}
	r := fromUint64(u)
	r.neg = true
	return r
}

const minInt64 = -1 << 63

func fromUint64(v uint64) Int {
	if v == 0 {
		return Int{}
	}
	var mag []limb.Word
	for v != 0 {
		mag = append(mag, limb.Word(v))
		if limb.WordBits >= 64 {
			v = 0
		} else {
			v >>= uint(limb.WordBits)
		}
	}
	return Int{mag: mag}
}

// FromInt64 constructs an Int equal to v. A convenience specialization of
// FromInt for the common case.
func FromInt64(v int64) Int { return FromInt(v) }

// FromUint64 constructs an Int equal to v.
func FromUint64(v uint64) Int { return FromInt(v) }

// ToInt returns the unique value of T congruent to x modulo 2^bits(T)
// (spec §4.8: "To integer T"): the low min(size, ceil(bits(T)/W)) limbs
// of |x|, sign-applied (negated for signed T, two's-complemented for
// unsigned T).
func ToInt[T Integer](x Int) T {
	bits := bitsOf[T]()
	limbsNeeded := (bits + limb.WordBits - 1) / limb.WordBits
	n := len(x.mag)
	if limbsNeeded < n {
		n = limbsNeeded
	}
	var u uint64
	for i := n - 1; i >= 0; i-- {
		u = u<<uint(limb.WordBits) | uint64(x.mag[i])
	}
	if x.neg {
		u = -u
	}
	if isSignedType[T]() {
		return T(int64(u))
	}
	return T(u)
}

// Int64 returns the unique int64 congruent to x modulo 2^64.
func (x Int) Int64() int64 { return ToInt[int64](x) }

// Uint64 returns the unique uint64 congruent to x modulo 2^64.
func (x Int) Uint64() uint64 { return ToInt[uint64](x) }

// Within reports whether x's exact value lies within T's representable
// range (spec §6's within<T>()), as opposed to ToInt's wrapping
// conversion.
func Within[T Integer](x Int) bool {
	bits := bitsOf[T]()
	if isSignedType[T]() {
		if x.IsZero() {
			return true
		}
		bl := x.BitLen()
		if x.neg {
			if bl < bits {
				return true
			}
			if bl == bits {
				return onlyTopBitSet(x.mag, bits-1)
			}
			return false
		}
		return bl <= bits-1
	}
	if x.neg {
		return false
	}
	return x.BitLen() <= bits
}

// onlyTopBitSet reports whether mag's exact value is 2^bitPos.
func onlyTopBitSet(mag []limb.Word, bitPos int) bool {
	idx := bitPos / limb.WordBits
	off := uint(bitPos % limb.WordBits)
	if len(mag) != idx+1 {
		return false
	}
	if mag[idx] != limb.Word(1)<<off {
		return false
	}
	for i := 0; i < idx; i++ {
		if mag[i] != 0 {
			return false
		}
	}
	return true
}
