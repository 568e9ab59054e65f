package bigrat

import (
	"fmt"
	"math/big"

	"github.com/joeycumines/go-bigrat/bigmath"
)

// RoundingMode selects the rounding behavior of Rat.Round and
// Rat.RoundDecimal. The zero value is ToEven.
type RoundingMode uint8

const (
	// ToEven rounds to the nearest integer, with ties to the even integer
	// (banker's rounding).
	ToEven RoundingMode = iota
	// AwayFromZero rounds to the nearest integer, with ties away from zero.
	AwayFromZero
	// ToZero truncates.
	ToZero
	// ToNegativeInf rounds down (floor).
	ToNegativeInf
	// ToPositiveInf rounds up (ceiling).
	ToPositiveInf
)

func (m RoundingMode) String() string {
	switch m {
	case ToEven:
		return `ToEven`
	case AwayFromZero:
		return `AwayFromZero`
	case ToZero:
		return `ToZero`
	case ToNegativeInf:
		return `ToNegativeInf`
	case ToPositiveInf:
		return `ToPositiveInf`
	default:
		return fmt.Sprintf(`RoundingMode(%d)`, uint8(m))
	}
}

// Floor returns the greatest integer less than or equal to x. Non-normal
// values are returned unchanged.
func (x Rat) Floor() Rat {
	if !x.IsNormal() || x.den.Cmp(bigOne) == 0 {
		return x
	}
	// Euclidean division, with a positive divisor, rounds toward -Inf
	return Rat{num: new(big.Int).Div(x.num, x.den), den: bigOne}
}

// Ceil returns the least integer greater than or equal to x. Non-normal
// values are returned unchanged.
func (x Rat) Ceil() Rat {
	if !x.IsNormal() || x.den.Cmp(bigOne) == 0 {
		return x
	}
	q := new(big.Int).Neg(x.num)
	q.Div(q, x.den)
	return Rat{num: q.Neg(q), den: bigOne}
}

// Trunc returns the integer part of x, i.e. rounds toward zero. Non-normal
// values are returned unchanged.
func (x Rat) Trunc() Rat {
	if !x.IsNormal() || x.den.Cmp(bigOne) == 0 {
		return x
	}
	return Rat{num: new(big.Int).Quo(x.num, x.den), den: bigOne}
}

// Round rounds x to an integer, using the given mode. Non-normal values are
// returned unchanged. A panic will occur if mode is not valid.
func (x Rat) Round(mode RoundingMode) Rat {
	if !x.IsNormal() || x.den.Cmp(bigOne) == 0 {
		return x
	}

	switch mode {
	case ToZero:
		return x.Trunc()
	case ToNegativeInf:
		return x.Floor()
	case ToPositiveInf:
		return x.Ceil()
	case ToEven, AwayFromZero:
	default:
		panic(`bigrat: round: invalid rounding mode`)
	}

	q, r := new(big.Int).QuoRem(x.num, x.den, new(big.Int))

	// compare abs(remainder) with exactly half, i.e. 2*abs(r) vs den
	r.Abs(r)
	r.Lsh(r, 1)
	if c := r.Cmp(x.den); c > 0 || (c == 0 && (mode == AwayFromZero || q.Bit(0) == 1)) {
		if x.num.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}

	return Rat{num: q, den: bigOne}
}

// RoundDecimal rounds x to the given number of decimal places, using the
// given mode. Negative values for places are allowed, and indicate the
// number of places to the left of the decimal point, e.g. rounding 512.34
// to -2 places gives 500. Non-normal values are returned unchanged.
func (x Rat) RoundDecimal(places int, mode RoundingMode) Rat {
	if !x.IsNormal() || x.num.Sign() == 0 || (places >= 0 && x.den.Cmp(bigOne) == 0) {
		return x
	}
	if places >= 0 {
		scale := Rat{num: bigmath.Pow10(places), den: bigOne}
		return x.Mul(scale).Round(mode).Quo(scale)
	}
	scale := Rat{num: bigmath.Pow10(-places), den: bigOne}
	return x.Quo(scale).Round(mode).Mul(scale)
}
