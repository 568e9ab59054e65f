package bigrat

import (
	"fmt"
	"math/big"

	"github.com/joeycumines/go-bigrat/bigmath"
)

// Decompose splits x into its integer part, truncated toward zero, and the
// remaining fraction, which has the same sign as x, e.g. -1.7 decomposes to
// -1 and -0.7. Fails with ErrNotNormal if x is not a normal value.
func (x Rat) Decompose() (integer, fraction Rat, err error) {
	if !x.IsNormal() {
		return NaN(), NaN(), fmt.Errorf(`%w: decompose %s`, ErrNotNormal, x.Kind())
	}
	q, r := new(big.Int).QuoRem(x.num, x.den, new(big.Int))
	return Rat{num: q, den: bigOne}, newFrac(r, new(big.Int).Set(x.den)), nil
}

// SqrtExact returns the square root of x, if it is exactly representable,
// i.e. both the numerator and denominator are perfect squares. Negative and
// non-normal values are never exact.
func (x Rat) SqrtExact() (Rat, bool) {
	if !x.IsNormal() || x.num.Sign() < 0 {
		return NaN(), false
	}
	// num and den are coprime, so must be checked independently
	if !bigmath.IsPerfectSquare(x.num) || !bigmath.IsPerfectSquare(x.den) {
		return NaN(), false
	}
	num, err := bigmath.Sqrt(x.num)
	if err != nil {
		panic(`bigrat: sqrt exact: unreachable`)
	}
	den, err := bigmath.Sqrt(x.den)
	if err != nil {
		panic(`bigrat: sqrt exact: unreachable`)
	}
	return Rat{num: num, den: den}, true
}

// Sqrt approximates the square root of x, using Newton's method, in exact
// rational arithmetic, seeded from the integer square roots of the
// numerator and denominator.
//
// Iteration stops once successive approximations differ by less than
// 10**-precision, in which case converged will be true. If maxIterations is
// reached first, the best approximation so far is returned, with converged
// false. That is not considered an error. Exact roots (see SqrtExact) are
// returned immediately. The root of NaN is NaN, and of positive infinity is
// positive infinity.
//
// Fails with ErrNegativeArgument if x is negative (including negative
// infinity).
func (x Rat) Sqrt(precision, maxIterations int) (root Rat, converged bool, err error) {
	switch x.Kind() {
	case KindNaN:
		return NaN(), true, nil
	case KindPositiveInfinity:
		return x, true, nil
	}
	if x.Sign() < 0 {
		return NaN(), false, fmt.Errorf(`%w: sqrt of %s`, ErrNegativeArgument, x)
	}

	if r, ok := x.SqrtExact(); ok {
		return r, true, nil
	}

	if precision < 0 {
		precision = 0
	}
	tolerance := Rat{num: bigOne, den: bigmath.Pow10(precision)}

	// both are at least 1 (x is not zero, or it would have been exact)
	num, _ := bigmath.Sqrt(x.num)
	den, _ := bigmath.Sqrt(x.den)
	root = newFrac(num, den)

	half := New(1, 2)
	for range maxIterations {
		// next = (root + x/root) / 2
		next := root.Add(x.Quo(root)).Mul(half)
		delta := next.Sub(root).Abs()
		root = next
		if c, _ := Compare(delta, tolerance); c < 0 {
			return root, true, nil
		}
	}

	return root, false, nil
}

// Pow returns x**n, using exponentiation by squaring. Negative exponents
// are evaluated as `x.Inv().Pow(-n)`.
//
// Fails with ErrInvalidExponent if x is zero and n <= 0. The result for NaN
// is NaN, and for the infinities, is 1 if n is 0, otherwise it is per
// repeated multiplication, e.g. `-Inf**3 == -Inf`, `-Inf**-1 == 0`.
func (x Rat) Pow(n int) (Rat, error) {
	if x.IsZero() && n <= 0 {
		return NaN(), fmt.Errorf(`%w: zero to the power of %d`, ErrInvalidExponent, n)
	}
	if n < 0 {
		// note: uint(-(n+1))+1 avoids overflow for math.MinInt
		return x.Inv().pow(uint(-(n + 1)) + 1), nil
	}
	return x.pow(uint(n)), nil
}

func (x Rat) pow(n uint) Rat {
	switch x.Kind() {
	case KindNaN:
		return NaN()
	case KindNormal:
	default:
		if n == 0 {
			return One()
		}
		if x.Sign() < 0 && n%2 == 0 {
			return special(1)
		}
		return x
	}

	if n == 0 {
		return One()
	}

	num := new(big.Int).Set(bigOne)
	den := new(big.Int).Set(bigOne)
	baseNum := new(big.Int).Set(x.num)
	baseDen := new(big.Int).Set(x.den)

	// exponentiation by squaring
	for {
		if n%2 == 1 { // current bit is 1?
			num.Mul(num, baseNum)
			den.Mul(den, baseDen)
		}
		n /= 2 // shift right
		if n == 0 {
			break
		}
		baseNum.Mul(baseNum, baseNum)
		baseDen.Mul(baseDen, baseDen)
	}

	// powers of coprime values are coprime
	return Rat{num: num, den: den}
}
