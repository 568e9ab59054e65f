package bigmath

import (
	"fmt"
	"math/big"
	"math/bits"
)

// IsPerfectSquare reports whether v is the square of an integer. Negative
// values are never perfect squares.
func IsPerfectSquare(v *big.Int) bool {
	switch v.Sign() {
	case -1:
		return false
	case 0:
		return true
	}
	if v.BitLen() == 1 {
		return true // 1
	}
	// squares are always 0, 1, 4 or 9 (mod 16)
	switch v.Bits()[0] & 0xf {
	case 0, 1, 4, 9:
	default:
		return false
	}
	r, err := Sqrt(v)
	if err != nil {
		panic(`bigmath: is perfect square: unreachable`)
	}
	return r.Mul(r, r).Cmp(v) == 0
}

// Sqrt returns the integer square root of v, i.e. the largest integer r such
// that r*r <= v. Newton's method is used, seeded from a power of two that
// is always at least the root, which guarantees a strictly decreasing
// sequence until convergence.
//
// Returns [ErrNegativeArgument] if v is negative.
func Sqrt(v *big.Int) (*big.Int, error) {
	switch v.Sign() {
	case -1:
		return nil, fmt.Errorf(`%w: sqrt of %s`, ErrNegativeArgument, v)
	case 0:
		return new(big.Int), nil
	}

	// x0 = 1 << ceil(bitlen/2)
	x := new(big.Int).Lsh(big.NewInt(1), uint(v.BitLen()+1)/2)
	y := new(big.Int)

	for range iterationLimit(v, 2) {
		// y = (x + v/x) >> 1
		y.Quo(v, x)
		y.Add(y, x)
		y.Rsh(y, 1)
		if y.Cmp(x) >= 0 {
			break
		}
		x, y = y, x
	}

	return x, nil
}

// NthRoot returns the integer n-th root of v, truncated toward zero, i.e.
// for non-negative v, the largest r such that r**n <= v. Negative values
// are supported for odd n, in which case the result is the negated root of
// the absolute value.
//
// Returns [ErrInvalidExponent] if n < 2, or [ErrNoRealRoot] if v is
// negative and n is even, except for n == 2, which delegates to [Sqrt], and
// therefore fails with [ErrNegativeArgument].
func NthRoot(v *big.Int, n int) (*big.Int, error) {
	if n < 2 {
		return nil, fmt.Errorf(`%w: root index %d`, ErrInvalidExponent, n)
	}
	if n == 2 {
		return Sqrt(v)
	}

	neg := v.Sign() < 0
	if neg && n%2 == 0 {
		return nil, fmt.Errorf(`%w: root %d of %s`, ErrNoRealRoot, n, v)
	}

	a := new(big.Int).Abs(v)
	if a.BitLen() <= 1 {
		// 0 or 1, which are their own roots
		if neg {
			a.Neg(a)
		}
		return a, nil
	}

	var (
		bn  = big.NewInt(int64(n))
		bn1 = big.NewInt(int64(n - 1))
		x   = new(big.Int).Lsh(big.NewInt(1), uint((a.BitLen()+n-1)/n))
		y   = new(big.Int)
		t   = new(big.Int)
	)

	for range iterationLimit(a, n) {
		// y = ((n-1)*x + a/x**(n-1)) / n
		t.Exp(x, bn1, nil)
		t.Quo(a, t)
		y.Mul(x, bn1)
		y.Add(y, t)
		y.Quo(y, bn)
		if y.Cmp(x) >= 0 {
			break
		}
		x, y = y, x
	}

	if neg {
		x.Neg(x)
	}

	return x, nil
}

// iterationLimit bounds the Newton iterations for a root of the given
// index. The seed is within a factor of 4 of the root, and the sequence is
// monotone, converging linearly by a factor of (n-1)/n until it is close
// enough for quadratic convergence, so the limit is not reached in
// practice.
func iterationLimit(v *big.Int, n int) int {
	return v.BitLen() + n*bits.Len(uint(n)) + 64
}
