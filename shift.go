package bi

import (
	"github.com/OTheDev/bi/internal/bierr"
	"github.com/OTheDev/bi/internal/limb"
)

// Lsh returns x << s, equal to x * 2^s (spec §4.5). s must be
// non-negative. s is split into a limb shift and a bit shift; the low
// limb-shift limbs of the result are zero-filled and the remainder is
// streamed through limb.ShlVU.
func Lsh(x Int, s int) (Int, error) {
	if s < 0 {
		return Int{}, bierr.New(bierr.InvalidArgument, "shift count must be non-negative, got %d", s)
	}
	if x.IsZero() || s == 0 {
		return x.Clone(), nil
	}
	limbShift := s / limb.WordBits
	bitShift := uint(s % limb.WordBits)
	extra := 0
	if bitShift != 0 {
		extra = 1
	}
	n := len(x.mag) + limbShift + extra
	mag, err := resizeMag(nil, n)
	if err != nil {
		return Int{}, err
	}
	for i := 0; i < limbShift; i++ {
		mag[i] = 0
	}
	dst := mag[limbShift : limbShift+len(x.mag)]
	if bitShift == 0 {
		copy(dst, x.mag)
	} else {
		c := limb.ShlVU(dst, x.mag, bitShift)
		if extra == 1 {
			mag[n-1] = c
		}
	}
	mag = limb.Trim(mag)
	return Int{neg: normSign(x.neg, mag), mag: mag}, nil
}

// Rsh returns x >> s, equal to floor(x / 2^s) (spec §4.5: arithmetic
// shift with sign extension, so (-1) >> anything == -1). s must be
// non-negative.
func Rsh(x Int, s int) (Int, error) {
	if s < 0 {
		return Int{}, bierr.New(bierr.InvalidArgument, "shift count must be non-negative, got %d", s)
	}
	if x.IsZero() || s == 0 {
		return x.Clone(), nil
	}
	bl := limb.BitLen(x.mag)
	if s >= bl {
		if x.neg {
			return FromInt64(-1), nil
		}
		return Int{}, nil
	}

	limbShift := s / limb.WordBits
	bitShift := uint(s % limb.WordBits)

	var anyDiscarded bool
	if x.neg {
		for i := 0; i < limbShift; i++ {
			if x.mag[i] != 0 {
				anyDiscarded = true
				break
			}
		}
		if !anyDiscarded && bitShift != 0 {
			mask := limb.Word(1)<<bitShift - 1
			if x.mag[limbShift]&mask != 0 {
				anyDiscarded = true
			}
		}
	}

	src := x.mag[limbShift:]
	mag, err := resizeMag(nil, len(src))
	if err != nil {
		return Int{}, err
	}
	limb.ShrVU(mag, src, bitShift)
	mag = limb.Trim(mag)

	if x.neg && anyDiscarded {
		mag, err = addMag(mag, []limb.Word{1})
		if err != nil {
			return Int{}, err
		}
	}
	return Int{neg: normSign(x.neg, mag), mag: mag}, nil
}

// LshAssign sets x to x << s, leaving x unchanged on failure.
func (x *Int) LshAssign(s int) error {
	r, err := Lsh(*x, s)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// RshAssign sets x to x >> s, leaving x unchanged on failure.
func (x *Int) RshAssign(s int) error {
	r, err := Rsh(*x, s)
	if err != nil {
		return err
	}
	*x = r
	return nil
}
