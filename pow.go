package bi

import "github.com/OTheDev/bi/internal/bierr"

// Pow returns base**exp. exp must be non-negative (spec §4.9). The
// common bases -1, 0, 1 are special-cased so their results never need
// to materialize a magnitude wider than MaxBits; every other base uses
// left-to-right binary exponentiation (square-and-multiply).
func Pow(base, exp Int) (Int, error) {
	if exp.IsNegative() {
		return Int{}, bierr.New(bierr.InvalidArgument, "Pow: exponent must be non-negative, got %s", exp.String())
	}
	if exp.IsZero() {
		return FromInt64(1), nil
	}

	switch {
	case base.IsZero():
		return Int{}, nil
	case Eq(base, FromInt64(1)):
		return FromInt64(1), nil
	case Eq(base, FromInt64(-1)):
		if exp.IsEven() {
			return FromInt64(1), nil
		}
		return FromInt64(-1), nil
	}

	// |base| >= 2 here, so bitlen(base^exp) grows roughly as
	// exp * bitlen(base); reject up front, before the squaring loop
	// ever runs, whenever that estimate alone exceeds MaxBits. Without
	// this check a huge exp would only be caught reactively inside Mul,
	// after already materializing an intermediate magnitude of
	// unbounded size.
	bitlenBase := base.BitLen()
	maxExp := FromInt64(int64(MaxBits / bitlenBase))
	if Gt(exp, maxExp) {
		return Int{}, bierr.New(bierr.Overflow, "Pow: result bit length would exceed MaxBits")
	}

	bl := exp.BitLen()
	result := FromInt64(1)
	for i := bl - 1; i >= 0; i-- {
		r, err := Mul(result, result)
		if err != nil {
			return Int{}, err
		}
		result = r
		if exp.TestBit(i) {
			r, err := Mul(result, base)
			if err != nil {
				return Int{}, err
			}
			result = r
		}
	}
	return result, nil
}
