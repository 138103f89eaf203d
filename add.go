package bi

import "github.com/OTheDev/bi/internal/limb"

// addMag computes |x| + |y| (spec §4.2's add_abs), reserving
// max(len(x),len(y))+1 limbs up front and trimming the result.
func addMag(x, y []limb.Word) ([]limb.Word, error) {
	if len(x) < len(y) {
		x, y = y, x
	}
	z, err := resizeMag(nil, len(x)+1)
	if err != nil {
		return nil, err
	}
	c := limb.AddVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = limb.AddVW(z[len(y):len(x)], x[len(y):], c)
	}
	z[len(x)] = c
	return limb.Trim(z), nil
}

// subMag computes x - y for trimmed magnitudes with |x| >= |y|.
func subMag(x, y []limb.Word) ([]limb.Word, error) {
	z, err := resizeMag(nil, len(x))
	if err != nil {
		return nil, err
	}
	c := limb.SubVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = limb.SubVW(z[len(y):], x[len(y):], c)
	}
	// c must be 0: the precondition |x| >= |y| guarantees no final borrow.
	_ = c
	return limb.Trim(z), nil
}

// subAbsMag computes ||x| - |y|| (spec §4.2's sub_abs), comparing
// MSB-down to determine which operand is larger. swapped reports whether
// y's magnitude was the larger one (so the caller's result sign should
// follow y rather than x).
func subAbsMag(x, y []limb.Word) (mag []limb.Word, swapped bool, err error) {
	switch cmpAbs(x, y) {
	case 0:
		return nil, false, nil
	case 1:
		m, err := subMag(x, y)
		return m, false, err
	default:
		m, err := subMag(y, x)
		return m, true, err
	}
}

// Add returns x + y.
func Add(x, y Int) (Int, error) {
	if x.neg == y.neg {
		mag, err := addMag(x.mag, y.mag)
		if err != nil {
			return Int{}, err
		}
		return Int{neg: normSign(x.neg, mag), mag: mag}, nil
	}
	mag, swapped, err := subAbsMag(x.mag, y.mag)
	if err != nil {
		return Int{}, err
	}
	neg := x.neg
	if swapped {
		neg = y.neg
	}
	return Int{neg: normSign(neg, mag), mag: mag}, nil
}

// Sub returns x - y.
func Sub(x, y Int) (Int, error) {
	return Add(x, Neg(y))
}

// Neg returns -x. Zero negates to itself (spec invariant 2: -0 is not
// representable).
func Neg(x Int) Int {
	if x.IsZero() {
		return Int{}
	}
	return Int{neg: !x.neg, mag: x.mag}
}

// Pos returns +x, unchanged.
func Pos(x Int) Int { return x }

// Abs returns |x|.
func Abs(x Int) Int {
	if x.neg {
		return Neg(x)
	}
	return x
}

// AddAssign sets x to x + y, leaving x unchanged on failure (the strong
// exception guarantee of spec §7).
func (x *Int) AddAssign(y Int) error {
	r, err := Add(*x, y)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// SubAssign sets x to x - y, leaving x unchanged on failure.
func (x *Int) SubAssign(y Int) error {
	r, err := Sub(*x, y)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// Inc sets x to x + 1 (the pre/post ++ of spec §6; Go has no distinct
// expression-value form, so callers needing the prior value should save
// it themselves before calling Inc).
func (x *Int) Inc() error { return x.AddAssign(FromInt64(1)) }

// Dec sets x to x - 1.
func (x *Int) Dec() error { return x.SubAssign(FromInt64(1)) }
