package bigrat

import (
	"math/big"
)

// Compare behaves like [cmp.Compare], returning -1, 0, or 1, if a is less
// than, equal to, or greater than b, except that comparing NaN fails with
// ErrIncomparableNaN. Infinities are ordered outside all normal values.
func Compare(a, b Rat) (int, error) {
	ka, kb := a.Kind(), b.Kind()
	if ka == KindNaN || kb == KindNaN {
		return 0, ErrIncomparableNaN
	}
	if ka != KindNormal || kb != KindNormal {
		switch {
		case ka < kb:
			return -1, nil
		case ka > kb:
			return 1, nil
		default:
			return 0, nil
		}
	}
	// denominators are positive, so cross-multiplying preserves the order
	var l, r big.Int
	l.Mul(a.num, b.den)
	r.Mul(b.num, a.den)
	return l.Cmp(&r), nil
}

// Cmp is an alias of Compare(x, y).
func (x Rat) Cmp(y Rat) (int, error) {
	return Compare(x, y)
}

// Equal reports whether x and y are the same value. Unlike Compare, it is
// defined for all values, and, unlike floats, NaN is equal to NaN.
func (x Rat) Equal(y Rat) bool {
	kx, ky := x.Kind(), y.Kind()
	if kx != ky {
		return false
	}
	if kx != KindNormal {
		return true
	}
	return x.num.Cmp(y.num) == 0 && x.den.Cmp(y.den) == 0
}

// Min returns the lesser of a and b, or a if they are equal.
func Min(a, b Rat) (Rat, error) {
	c, err := Compare(a, b)
	if err != nil {
		return NaN(), err
	}
	if c <= 0 {
		return a, nil
	}
	return b, nil
}

// Max returns the greater of a and b, or a if they are equal.
func Max(a, b Rat) (Rat, error) {
	c, err := Compare(a, b)
	if err != nil {
		return NaN(), err
	}
	if c >= 0 {
		return a, nil
	}
	return b, nil
}

// Clamp returns x limited to the range [lo, hi]. The result is undefined if
// lo is greater than hi.
func Clamp(x, lo, hi Rat) (Rat, error) {
	x, err := Max(x, lo)
	if err != nil {
		return NaN(), err
	}
	return Min(x, hi)
}
