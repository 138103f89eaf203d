package bi

import (
	"github.com/OTheDev/bi/internal/bierr"
	"github.com/OTheDev/bi/internal/limb"
)

// divModMag computes magnitudes q, r with x = q*|y| + r, 0 <= r < |y|,
// dispatching per spec §4.4: a size/MSB compare short-circuit, the
// single-limb path, or full Knuth Algorithm D.
func divModMag(x, y []limb.Word) (q, r []limb.Word, err error) {
	if len(y) == 0 {
		return nil, nil, bierr.ErrDivisionByZero
	}
	if cmpAbs(x, y) < 0 {
		rCopy := append([]limb.Word(nil), x...)
		return nil, rCopy, nil
	}
	if len(y) == 1 {
		return divModSingleLimb(x, y[0])
	}
	return divModKnuthD(x, y)
}

// divModSingleLimb runs §4.4's single-limb division path: a two-limb
// running remainder streamed high-to-low via limb.DivWVW.
func divModSingleLimb(x []limb.Word, d limb.Word) (q, r []limb.Word, err error) {
	qMag, err := resizeMag(nil, len(x))
	if err != nil {
		return nil, nil, err
	}
	rem := limb.DivWVW(qMag, 0, x, d)
	qMag = limb.Trim(qMag)
	var rMag []limb.Word
	if rem != 0 {
		rMag = []limb.Word{rem}
	}
	return qMag, rMag, nil
}

// divModKnuthD implements Knuth's Algorithm D with Exercise 37's
// add-back correction (spec §4.4), for a divisor of n >= 2 limbs.
func divModKnuthD(x, y []limb.Word) (q, r []limb.Word, err error) {
	n := len(y)
	m := len(x) - n

	s := uint(limb.LeadingZeros(y[n-1]))

	un, err := resizeMag(nil, m+n+1)
	if err != nil {
		return nil, nil, err
	}
	vn, err := resizeMag(nil, n)
	if err != nil {
		return nil, nil, err
	}

	if s == 0 {
		copy(un[:m+n], x)
		un[m+n] = 0
		copy(vn, y)
	} else {
		un[m+n] = limb.ShlVU(un[:m+n], x, s)
		limb.ShlVU(vn, y, s)
	}

	qBuf, err := resizeMag(nil, m+1)
	if err != nil {
		return nil, nil, err
	}

	vTop, vSecond := vn[n-1], vn[n-2]

	prod, err := resizeMag(nil, n+1)
	if err != nil {
		return nil, nil, err
	}
	prod = prod[:n+1]

	for j := m; j >= 0; j-- {
		var qhat, rhat limb.Word
		top := un[j+n]
		if top == vTop {
			qhat = ^limb.Word(0)
			// rhat = top*B + un[j+n-1] - qhat*vTop, computed without
			// overflowing: since qhat = max word, qhat*vTop = (B-1)*vTop.
			// Equivalently (see Knuth/Warren): rhat starts at
			// un[j+n-1] + vTop and we detect word-overflow below.
			rhat = un[j+n-1] + vTop
			if rhat < vTop { // overflowed past B: any further decrement of qhat is unnecessary
				goto multiplySubtract
			}
		} else {
			qhat, rhat = limb.DivWW(top, un[j+n-1], vTop)
		}

		for {
			hi, lo := limb.MulWW(qhat, vSecond)
			if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
				break
			}
			qhat--
			newRhat := rhat + vTop
			if newRhat < rhat {
				break
			}
			rhat = newRhat
		}

	multiplySubtract:
		carry := limb.MulAddVWW(prod[:n], vn, qhat, 0)
		prod[n] = carry
		borrow := limb.SubVV(un[j:j+n+1], un[j:j+n+1], prod)
		if borrow != 0 {
			qhat--
			limb.AddVV(un[j:j+n], un[j:j+n], vn)
		}
		qBuf[j] = qhat
	}

	q = limb.Trim(qBuf)

	rBuf, err := resizeMag(nil, n)
	if err != nil {
		return nil, nil, err
	}
	if s == 0 {
		copy(rBuf, un[:n])
	} else {
		limb.ShrVU(rBuf, un[:n], s)
	}
	r = limb.Trim(rBuf)
	return q, r, nil
}

// QuoRem returns the truncated quotient and remainder of x divided by y,
// satisfying q*y + r == x, sign(r) == sign(x) (or r == 0), and
// sign(q) == sign(x) XOR sign(y) (spec §4.4). Fails with DivisionByZero
// if y is zero.
func QuoRem(x, y Int) (q, r Int, err error) {
	qMag, rMag, err := divModMag(x.mag, y.mag)
	if err != nil {
		return Int{}, Int{}, err
	}
	q = Int{neg: (x.neg != y.neg) && len(qMag) > 0, mag: qMag}
	r = Int{neg: x.neg && len(rMag) > 0, mag: rMag}
	return q, r, nil
}

// Quo returns the truncated quotient x / y.
func Quo(x, y Int) (Int, error) {
	q, _, err := QuoRem(x, y)
	return q, err
}

// Rem returns the remainder x % y, with sign(r) == sign(x) (or zero).
func Rem(x, y Int) (Int, error) {
	_, r, err := QuoRem(x, y)
	return r, err
}

// QuoAssign sets x to x / y, leaving x unchanged on failure.
func (x *Int) QuoAssign(y Int) error {
	r, err := Quo(*x, y)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// RemAssign sets x to x % y, leaving x unchanged on failure.
func (x *Int) RemAssign(y Int) error {
	r, err := Rem(*x, y)
	if err != nil {
		return err
	}
	*x = r
	return nil
}
