package bi

import (
	"math"

	"github.com/OTheDev/bi/internal/bierr"
	"github.com/OTheDev/bi/internal/limb"
)

// FromFloat64 constructs an Int from the integer part of f, truncating
// any fractional part toward zero (spec §4.8, §9). NaN and ±Inf fail
// with FromFloat; any finite f with |f| < 1 truncates to zero.
func FromFloat64(f float64) (Int, error) {
	if math.IsNaN(f) {
		return Int{}, bierr.New(bierr.FromFloat, "FromFloat64: f is NaN")
	}
	if math.IsInf(f, 0) {
		return Int{}, bierr.New(bierr.FromFloat, "FromFloat64: f is infinite")
	}
	neg := f < 0
	absF := f
	if neg {
		absF = -f
	}
	if absF < 1 {
		return Int{}, nil
	}

	bits := math.Float64bits(absF)
	exp := int((bits >> 52) & 0x7FF)
	mantissa := bits & (1<<52 - 1)
	mant := mantissa | (1 << 52)
	e := exp - 1075 // |f| == mant * 2^e, mant in [2^52, 2^53)

	mantInt := FromUint64(mant)
	var result Int
	var err error
	if e >= 0 {
		result, err = Lsh(mantInt, e)
	} else {
		// mantInt is nonnegative, so Rsh's floor behavior coincides with
		// truncation toward zero here: drop the low -e bits.
		result, err = Rsh(mantInt, -e)
	}
	if err != nil {
		return Int{}, err
	}
	result.neg = neg && !result.IsZero()
	return result, nil
}

// ToFloat64 returns the nearest float64 to x, rounding to nearest-even
// and saturating to ±Inf when |x| exceeds float64's range (spec §4.8).
func ToFloat64(x Int) float64 {
	if x.IsZero() {
		return 0
	}
	bl := limb.BitLen(x.mag)
	if bl > 1024 { // definitely overflows float64 (max exponent 1023)
		if x.neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	// Reduce to the top 55 bits (53 mantissa + guard + round bits), which
	// always fits in a uint64 regardless of limb width, plus whether any
	// lower bit of |x| was discarded, then round to nearest-even.
	const keep = 55
	shift := bl - keep
	var top uint64
	if shift >= 0 {
		top = topWindow(x.mag, shift, keep)
	} else {
		// |x| is narrower than keep bits: scale it up so that it fills
		// the window and its guard and round bits are zero.
		top = topWindow(x.mag, 0, keep) << uint(-shift)
	}
	sticky := shift > 0 && anyBitSetBelow(x.mag, shift)

	// top holds floor(|x| / 2^shift), up to `keep` bits wide; splitting
	// off its low 2 bits as guard/round leaves a 53-bit mantissa scaled
	// by 2^(shift+2).
	e := shift + 2
	mant53 := top >> 2
	guard := (top >> 1) & 1
	round := top & 1
	if guard == 1 && (round == 1 || sticky || mant53&1 == 1) {
		mant53++
		if mant53 == 1<<53 {
			mant53 >>= 1
			e++
		}
	}

	result := math.Ldexp(float64(mant53), e)
	if math.IsInf(result, 0) {
		if x.neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if x.neg {
		return -result
	}
	return result
}

// topWindow returns floor(|mag| / 2^shift), truncated to its low keep
// bits (keep <= 64), as a uint64. mag's bit length minus shift must not
// exceed keep.
func topWindow(mag []limb.Word, shift, keep int) uint64 {
	limbShift := shift / limb.WordBits
	bitShift := uint(shift % limb.WordBits)
	var src []limb.Word
	if limbShift < len(mag) {
		src = mag[limbShift:]
	}

	var shifted []limb.Word
	if bitShift == 0 || len(src) == 0 {
		shifted = src
	} else {
		shifted = make([]limb.Word, len(src))
		limb.ShrVU(shifted, src, bitShift)
	}

	nwords := (keep + limb.WordBits - 1) / limb.WordBits
	var v uint64
	for i := nwords - 1; i >= 0; i-- {
		var w limb.Word
		if i < len(shifted) {
			w = shifted[i]
		}
		v = v<<uint(limb.WordBits) | uint64(w)
	}
	return v
}

// anyBitSetBelow reports whether any of mag's low `shift` bits is set.
func anyBitSetBelow(mag []limb.Word, shift int) bool {
	limbShift := shift / limb.WordBits
	bitShift := uint(shift % limb.WordBits)
	for i := 0; i < limbShift && i < len(mag); i++ {
		if mag[i] != 0 {
			return true
		}
	}
	if bitShift != 0 && limbShift < len(mag) {
		mask := limb.Word(1)<<bitShift - 1
		if mag[limbShift]&mask != 0 {
			return true
		}
	}
	return false
}
