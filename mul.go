package bi

import "github.com/OTheDev/bi/internal/limb"

// mulMag computes |x| * |y| via schoolbook multiplication (Knuth
// Algorithm M, spec §4.3). For m := len(x), n := len(y), it reserves
// m+n limbs up front and, for each limb y[j] of the multiplier, folds
// x*y[j] into the target window z[j:j+m] with AddMulVVW, carrying the
// final carry out into z[j+m] (a position no earlier iteration has
// written, so a plain assignment -- not an accumulation -- is correct).
func mulMag(x, y []limb.Word) ([]limb.Word, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, nil
	}
	m, n := len(x), len(y)
	z, err := resizeMag(nil, m+n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		if y[j] != 0 {
			z[j+m] = limb.AddMulVVW(z[j:j+m], x, y[j])
		}
	}
	return limb.Trim(z), nil
}

// mulAddLimbMag computes mag*v + k in place conceptually (into a fresh
// buffer, per the strong-exception-safety shape used throughout this
// package): the mul_add_limb primitive of spec §4.3, used by the batched
// string parser. It may grow the magnitude by at most one limb.
func mulAddLimbMag(mag []limb.Word, v, k limb.Word) ([]limb.Word, error) {
	z, err := resizeMag(nil, len(mag)+1)
	if err != nil {
		return nil, err
	}
	c := limb.MulAddVWW(z[:len(mag)], mag, v, k)
	z[len(mag)] = c
	return limb.Trim(z), nil
}

// Mul returns x * y. The result's sign is the XOR of the operands'
// signs, forced positive when either operand is zero (spec §4.3).
func Mul(x, y Int) (Int, error) {
	mag, err := mulMag(x.mag, y.mag)
	if err != nil {
		return Int{}, err
	}
	return Int{neg: (x.neg != y.neg) && len(mag) > 0, mag: mag}, nil
}

// MulAssign sets x to x * y, leaving x unchanged on failure.
func (x *Int) MulAssign(y Int) error {
	r, err := Mul(*x, y)
	if err != nil {
		return err
	}
	*x = r
	return nil
}
