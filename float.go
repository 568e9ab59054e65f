package bigrat

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/joeycumines/go-bigrat/bigmath"
)

// binary format parameters, see fromIEEE and quoFloatValue
type ieeeFormat struct {
	mantBits uint // explicit mantissa bits
	expBits  uint
	bias     int
	// emax is the bit length difference (num - den) above which every
	// value overflows, and emin is the difference (den - num) above which
	// every value rounds to zero
	emax, emin int
}

var (
	float64Format = ieeeFormat{mantBits: 52, expBits: 11, bias: 1023, emax: 1026, emin: 1076}
	float32Format = ieeeFormat{mantBits: 23, expBits: 8, bias: 127, emax: 130, emin: 151}
)

// FromFloat64 returns the exact value of v, decomposed from its binary
// representation. NaN and the infinities map to the corresponding special
// values, and both positive and negative zero map to zero.
func FromFloat64(v float64) Rat {
	b := math.Float64bits(v)
	return float64Format.fromIEEE(b>>63 != 0, b>>52&0x7ff, b&(1<<52-1))
}

// FromFloat32 is the float32 variant of FromFloat64.
func FromFloat32(v float32) Rat {
	b := math.Float32bits(v)
	return float32Format.fromIEEE(b>>31 != 0, uint64(b>>23&0xff), uint64(b&(1<<23-1)))
}

func (x ieeeFormat) fromIEEE(neg bool, exp, mant uint64) Rat {
	if exp == 1<<x.expBits-1 {
		if mant != 0 {
			return NaN()
		}
		if neg {
			return special(-1)
		}
		return special(1)
	}

	var e int
	if exp == 0 {
		if mant == 0 {
			return Zero()
		}
		// subnormal, no implicit bit
		e = 1 - x.bias - int(x.mantBits)
	} else {
		mant |= 1 << x.mantBits
		e = int(exp) - x.bias - int(x.mantBits)
	}

	// the numerator is odd, and the denominator a power of two, so the
	// value is already reduced
	tz := bits.TrailingZeros64(mant)
	mant >>= tz
	e += tz

	num := new(big.Int).SetUint64(mant)
	if neg {
		num.Neg(num)
	}
	if e >= 0 {
		return Rat{num: bigmath.Lsh(num, uint64(e)), den: bigOne}
	}
	return Rat{num: num, den: bigmath.Lsh(bigOne, uint64(-e))}
}

// Float64 returns the nearest float64 to x, rounding half to even. Values
// too large in magnitude become infinities, and values too small become
// zero (which may be negative zero). Special values map to the
// corresponding float64 values.
func (x Rat) Float64() float64 {
	switch x.Kind() {
	case KindNaN:
		return math.NaN()
	case KindPositiveInfinity:
		return math.Inf(1)
	case KindNegativeInfinity:
		return math.Inf(-1)
	}
	if f, ok := float64Format.trivialQuo(x.num, x.den); ok {
		return f
	}
	v, _ := quoFloatValue(x.num, x.den, float64Format).Float64()
	return v
}

// Float32 is the float32 variant of Float64.
func (x Rat) Float32() float32 {
	switch x.Kind() {
	case KindNaN:
		return float32(math.NaN())
	case KindPositiveInfinity:
		return float32(math.Inf(1))
	case KindNegativeInfinity:
		return float32(math.Inf(-1))
	}
	if f, ok := float32Format.trivialQuo(x.num, x.den); ok {
		return float32(f)
	}
	v, _ := quoFloatValue(x.num, x.den, float32Format).Float32()
	return v
}

// trivialQuo handles zero, and values that certainly overflow or
// underflow, returning false if quoFloatValue must be used
func (x ieeeFormat) trivialQuo(num, den *big.Int) (float64, bool) {
	sign := num.Sign()
	if sign == 0 {
		return 0, true
	}
	nb, db := num.BitLen(), den.BitLen()
	switch {
	case nb-db > x.emax:
		return math.Inf(sign), true
	case db-nb > x.emin:
		if sign < 0 {
			return math.Copysign(0, -1), true
		}
		return 0, true
	}
	return 0, false
}

// quoFloatValue returns num/den as a big.Float with enough precision that
// a single rounding to the target format is correct.
//
// The quotient is computed to at least mantBits+3 significant bits, by
// shifting either operand, with the lowest bit set if the division was
// inexact (a sticky bit), which ensures ties are only seen when they
// are exact.
func quoFloatValue(num, den *big.Int, format ieeeFormat) *big.Float {
	s := den.BitLen() - num.BitLen() + int(format.mantBits) + 3
	n, d := num, den
	if s > 0 {
		n = bigmath.Lsh(num, uint64(s))
	} else if s < 0 {
		d = bigmath.Lsh(den, uint64(-s))
	}
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if r.Sign() != 0 {
		// q has more bits than the target, so the sticky bit is below
		// the rounding position
		if q.Sign() < 0 {
			q.Abs(q)
			q.SetBit(q, 0, 1)
			q.Neg(q)
		} else {
			q.SetBit(q, 0, 1)
		}
	}
	var f big.Float
	f.SetInt(q)
	return f.SetMantExp(&f, -s)
}
