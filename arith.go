package bigrat

import (
	"fmt"
	"math/big"
)

// Add returns x + y.
//
// NaN propagates. A normal value added to an infinity is that infinity, the
// sum of same-signed infinities is that infinity, and the sum of
// opposite-signed infinities is NaN.
func (x Rat) Add(y Rat) Rat {
	kx, ky := x.Kind(), y.Kind()
	switch {
	case kx == KindNaN || ky == KindNaN:
		return NaN()
	case kx == KindNormal && ky == KindNormal:
		return addNormal(x, y)
	case kx == ky:
		return x
	case kx == KindNormal:
		return y
	case ky == KindNormal:
		return x
	default:
		return NaN()
	}
}

func addNormal(a, b Rat) Rat {
	if a.den.Cmp(b.den) == 0 {
		return newFrac(new(big.Int).Add(a.num, b.num), new(big.Int).Set(a.den))
	}
	// den = da * (db/g), num = na*(db/g) + nb*(da/g)
	g := new(big.Int).GCD(nil, nil, a.den, b.den)
	bg := new(big.Int).Quo(b.den, g)
	ag := new(big.Int).Quo(a.den, g)
	den := new(big.Int).Mul(a.den, bg)
	num := new(big.Int).Mul(a.num, bg)
	num.Add(num, ag.Mul(b.num, ag))
	return newFrac(num, den)
}

// Sub returns x - y, i.e. x + -y.
func (x Rat) Sub(y Rat) Rat {
	return x.Add(y.Neg())
}

// Neg returns -x. The negation of NaN is NaN.
func (x Rat) Neg() Rat {
	switch x.Kind() {
	case KindNormal:
		if x.num.Sign() == 0 {
			return x
		}
		return Rat{num: new(big.Int).Neg(x.num), den: x.den}
	case KindPositiveInfinity:
		return special(-1)
	case KindNegativeInfinity:
		return special(1)
	default:
		return NaN()
	}
}

// Abs returns |x|. The absolute value of either infinity is positive
// infinity, and of NaN is NaN.
func (x Rat) Abs() Rat {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}

// Mul returns x * y.
//
// NaN propagates. A normal value multiplied by an infinity is an infinity,
// signed by the normal value, unless the normal value is zero, which
// results in NaN. The product of infinities is an infinity, positive if
// they have the same sign.
func (x Rat) Mul(y Rat) Rat {
	kx, ky := x.Kind(), y.Kind()
	switch {
	case kx == KindNaN || ky == KindNaN:
		return NaN()
	case kx == KindNormal && ky == KindNormal:
		return mulNormal(x, y)
	case kx == KindNormal:
		return mulInf(x, ky)
	case ky == KindNormal:
		return mulInf(y, kx)
	case kx == ky:
		return special(1)
	default:
		return special(-1)
	}
}

func mulNormal(a, b Rat) Rat {
	if a.num.Sign() == 0 || b.num.Sign() == 0 {
		return Zero()
	}
	return newFrac(
		new(big.Int).Mul(a.num, b.num),
		new(big.Int).Mul(a.den, b.den),
	)
}

func mulInf(v Rat, inf Kind) Rat {
	sign := v.num.Sign()
	if inf == KindNegativeInfinity {
		sign = -sign
	}
	// note: 0 * Inf is NaN (special(0))
	return special(sign)
}

// Inv returns the reciprocal of x, by swapping the numerator and the
// denominator.
//
// The reciprocal of zero is positive infinity, and the reciprocal of either
// infinity is zero. The sign of negative infinity is NOT preserved, i.e.
// `-1 / -Inf == 0`, and `1 / (1 / -Inf) == +Inf`. The reciprocal of NaN is
// NaN.
func (x Rat) Inv() Rat {
	switch x.Kind() {
	case KindNormal:
		switch x.num.Sign() {
		case 0:
			return special(1)
		case -1:
			return Rat{num: new(big.Int).Neg(x.den), den: new(big.Int).Neg(x.num)}
		default:
			return Rat{num: x.den, den: x.num}
		}
	case KindNaN:
		return NaN()
	default:
		// (±1, 0) -> (0, ±1) -> (0, 1)
		return Zero()
	}
}

// Quo returns x / y, i.e. x * y.Inv(). See Inv and Mul for the special
// cases, e.g. `1 / 0 == +Inf`, and `0 / 0` is NaN.
func (x Rat) Quo(y Rat) Rat {
	return x.Mul(y.Inv())
}

// Rem returns the remainder of x / y, truncated toward zero, i.e.
// `x - y * trunc(x / y)`, with the same sign as x. The result is NaN unless
// both x and y are normal values, and y is not zero.
func (x Rat) Rem(y Rat) Rat {
	r, err := x.Mod(y)
	if err != nil {
		return NaN()
	}
	return r
}

// Mod behaves like Rem, but fails with ErrDivisionUndefined where
// Rem would return NaN.
func (x Rat) Mod(y Rat) (Rat, error) {
	if !x.IsNormal() || !y.IsNormal() {
		return NaN(), fmt.Errorf(`%w: remainder of %s and %s`, ErrDivisionUndefined, x.Kind(), y.Kind())
	}
	if y.num.Sign() == 0 {
		return NaN(), fmt.Errorf(`%w: remainder of division by zero`, ErrDivisionUndefined)
	}
	return x.Sub(y.Mul(x.Quo(y).Trunc())), nil
}
