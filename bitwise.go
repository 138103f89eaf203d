package bi

import "github.com/OTheDev/bi/internal/limb"

var one = []limb.Word{1}

// andMag, orMag, xorMag, andNotMag are the unsigned, elementwise
// building blocks that And/Or/Xor/Not compose with the two's-complement
// identities below (spec §4.5): sign-magnitude has no native bitwise
// representation, so negative operands are bridged through x == -(|x|-1+1)
// ==> ^x == -(x+1), the same identity every two's-complement bit trick
// relies on.
func andMag(x, y []limb.Word) []limb.Word {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	z := make([]limb.Word, n)
	for i := 0; i < n; i++ {
		z[i] = x[i] & y[i]
	}
	return limb.Trim(z)
}

func orMag(x, y []limb.Word) []limb.Word {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]limb.Word, len(x))
	copy(z, x)
	for i := range y {
		z[i] |= y[i]
	}
	return limb.Trim(z)
}

func xorMag(x, y []limb.Word) []limb.Word {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]limb.Word, len(x))
	copy(z, x)
	for i := range y {
		z[i] ^= y[i]
	}
	return limb.Trim(z)
}

// andNotMag computes x &^ y (bits of x not set in y).
func andNotMag(x, y []limb.Word) []limb.Word {
	z := make([]limb.Word, len(x))
	for i := range x {
		var yi limb.Word
		if i < len(y) {
			yi = y[i]
		}
		z[i] = x[i] &^ yi
	}
	return limb.Trim(z)
}

// And returns x & y.
func And(x, y Int) (Int, error) {
	if x.neg == y.neg {
		if x.neg {
			// (-x) & (-y) == ^(x-1) & ^(y-1) == ^((x-1)|(y-1)) == -(((x-1)|(y-1))+1)
			x1, err := subMag(x.mag, one)
			if err != nil {
				return Int{}, err
			}
			y1, err := subMag(y.mag, one)
			if err != nil {
				return Int{}, err
			}
			mag, err := addMag(orMag(x1, y1), one)
			if err != nil {
				return Int{}, err
			}
			return Int{neg: true, mag: mag}, nil
		}
		return Int{neg: false, mag: andMag(x.mag, y.mag)}, nil
	}
	if x.neg {
		x, y = y, x
	}
	// x & (-y) == x &^ (y-1)
	y1, err := subMag(y.mag, one)
	if err != nil {
		return Int{}, err
	}
	return Int{neg: false, mag: andNotMag(x.mag, y1)}, nil
}

// Or returns x | y.
func Or(x, y Int) (Int, error) {
	if x.neg == y.neg {
		if x.neg {
			// (-x) | (-y) == ^(x-1) | ^(y-1) == ^((x-1)&(y-1)) == -(((x-1)&(y-1))+1)
			x1, err := subMag(x.mag, one)
			if err != nil {
				return Int{}, err
			}
			y1, err := subMag(y.mag, one)
			if err != nil {
				return Int{}, err
			}
			mag, err := addMag(andMag(x1, y1), one)
			if err != nil {
				return Int{}, err
			}
			return Int{neg: true, mag: mag}, nil
		}
		return Int{neg: false, mag: orMag(x.mag, y.mag)}, nil
	}
	if x.neg {
		x, y = y, x
	}
	// x | (-y) == ^(^x & (y-1)) == -((y1 &^ x) + 1)
	y1, err := subMag(y.mag, one)
	if err != nil {
		return Int{}, err
	}
	mag, err := addMag(andNotMag(y1, x.mag), one)
	if err != nil {
		return Int{}, err
	}
	return Int{neg: true, mag: mag}, nil
}

// Xor returns x ^ y.
func Xor(x, y Int) (Int, error) {
	if x.neg == y.neg {
		if x.neg {
			// (-x) ^ (-y) == ^(x-1) ^ ^(y-1) == (x-1) ^ (y-1)
			x1, err := subMag(x.mag, one)
			if err != nil {
				return Int{}, err
			}
			y1, err := subMag(y.mag, one)
			if err != nil {
				return Int{}, err
			}
			return Int{neg: false, mag: xorMag(x1, y1)}, nil
		}
		return Int{neg: false, mag: xorMag(x.mag, y.mag)}, nil
	}
	if x.neg {
		x, y = y, x
	}
	// x ^ (-y) == ^(x ^ (y-1)) == -((x ^ (y-1)) + 1)
	y1, err := subMag(y.mag, one)
	if err != nil {
		return Int{}, err
	}
	mag, err := addMag(xorMag(x.mag, y1), one)
	if err != nil {
		return Int{}, err
	}
	return Int{neg: true, mag: mag}, nil
}

// Not returns ^x, equal to -x-1.
func Not(x Int) (Int, error) {
	if x.neg {
		// ^(-x) == x-1
		mag, err := subMag(x.mag, one)
		if err != nil {
			return Int{}, err
		}
		return Int{neg: false, mag: mag}, nil
	}
	// ^x == -(x+1)
	mag, err := addMag(x.mag, one)
	if err != nil {
		return Int{}, err
	}
	return Int{neg: true, mag: mag}, nil
}

// AndAssign sets x to x & y, leaving x unchanged on failure.
func (x *Int) AndAssign(y Int) error {
	r, err := And(*x, y)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// OrAssign sets x to x | y, leaving x unchanged on failure.
func (x *Int) OrAssign(y Int) error {
	r, err := Or(*x, y)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// XorAssign sets x to x ^ y, leaving x unchanged on failure.
func (x *Int) XorAssign(y Int) error {
	r, err := Xor(*x, y)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// NotAssign sets x to ^x, leaving x unchanged on failure.
func (x *Int) NotAssign() error {
	r, err := Not(*x)
	if err != nil {
		return err
	}
	*x = r
	return nil
}
