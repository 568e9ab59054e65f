package bigrat

import (
	"fmt"
	"math/big"
)

// Kind classifies a Rat, see Rat.Kind.
type Kind uint8

// The order of these constants is significant, as it matches the ordering
// of the values, excluding NaN, which is unordered.
const (
	KindNaN Kind = iota
	KindNegativeInfinity
	KindNormal
	KindPositiveInfinity
)

// Rat is an immutable rational number, or one of the special values NaN,
// positive infinity, or negative infinity.
//
// Normal values are always fully reduced, with a positive denominator, and
// zero is represented uniquely as 0/1. Special values are encoded with a
// zero denominator, with the sign of the numerator indicating the kind
// (positive infinity, negative infinity, or zero for NaN).
//
// WARNING: The zero value is NaN (0/0), NOT the number zero. Use Zero, or
// any of the constructors, to obtain the number zero.
//
// Rat values must be compared using Rat.Equal or Compare, not ==.
type Rat struct {
	num *big.Int
	den *big.Int
}

// shared values, never mutated
var (
	bigZero     = big.NewInt(0)
	bigOne      = big.NewInt(1)
	bigMinusOne = big.NewInt(-1)
	big10       = big.NewInt(10)
)

func (k Kind) String() string {
	switch k {
	case KindNaN:
		return `NaN`
	case KindNegativeInfinity:
		return `NegativeInfinity`
	case KindNormal:
		return `Normal`
	case KindPositiveInfinity:
		return `PositiveInfinity`
	default:
		return fmt.Sprintf(`Kind(%d)`, uint8(k))
	}
}

// FromInt returns v/1. The value of v is copied.
func FromInt(v *big.Int) Rat {
	return Rat{num: new(big.Int).Set(v), den: bigOne}
}

// FromInt64 returns v/1.
func FromInt64(v int64) Rat {
	return Rat{num: big.NewInt(v), den: bigOne}
}

// FromUint64 returns v/1.
func FromUint64(v uint64) Rat {
	return Rat{num: new(big.Int).SetUint64(v), den: bigOne}
}

// New returns num/den, reduced. A zero den results in a special value, per
// NewFrac.
func New(num, den int64) Rat {
	return newFrac(big.NewInt(num), big.NewInt(den))
}

// NewFrac returns num/den, reduced, with the sign normalised onto the
// numerator. The values of num and den are copied.
//
// If den is zero, the result is positive infinity, negative infinity, or
// NaN, for positive, negative, or zero num, respectively.
func NewFrac(num, den *big.Int) Rat {
	return newFrac(new(big.Int).Set(num), new(big.Int).Set(den))
}

// FromBigRat returns the value of r, which is copied.
func FromBigRat(r *big.Rat) Rat {
	return Rat{num: new(big.Int).Set(r.Num()), den: new(big.Int).Set(r.Denom())}
}

// Special returns the special value of the given kind. KindNormal is
// rejected with ErrInvalidConstruction, as normal values must be
// constructed from their numerator and denominator.
func Special(kind Kind) (Rat, error) {
	switch kind {
	case KindNaN:
		return NaN(), nil
	case KindNegativeInfinity:
		return Inf(-1), nil
	case KindPositiveInfinity:
		return Inf(1), nil
	default:
		return NaN(), fmt.Errorf(`%w: special value of kind %s`, ErrInvalidConstruction, kind)
	}
}

// NaN returns a NaN value. It is equivalent to the zero value of Rat.
func NaN() Rat {
	return Rat{}
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Rat {
	if sign < 0 {
		return special(-1)
	}
	return special(1)
}

// Zero returns 0/1.
func Zero() Rat {
	return Rat{num: bigZero, den: bigOne}
}

// One returns 1/1.
func One() Rat {
	return Rat{num: bigOne, den: bigOne}
}

// newFrac takes ownership of num and den, which may be mutated.
func newFrac(num, den *big.Int) Rat {
	switch den.Sign() {
	case 0:
		return special(num.Sign())
	case -1:
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Zero()
	}
	if den.Cmp(bigOne) != 0 {
		g := new(big.Int).GCD(nil, nil, num, den)
		if g.Cmp(bigOne) != 0 {
			num.Quo(num, g)
			den.Quo(den, g)
		}
	}
	if den.Cmp(bigOne) == 0 {
		den = bigOne
	}
	return Rat{num: num, den: den}
}

func special(sign int) Rat {
	switch {
	case sign > 0:
		return Rat{num: bigOne, den: bigZero}
	case sign < 0:
		return Rat{num: bigMinusOne, den: bigZero}
	default:
		return Rat{num: bigZero, den: bigZero}
	}
}

func (x Rat) n() *big.Int {
	if x.num == nil {
		return bigZero
	}
	return x.num
}

func (x Rat) d() *big.Int {
	if x.den == nil {
		return bigZero
	}
	return x.den
}

// Kind classifies x, which is derived from the numerator and denominator.
func (x Rat) Kind() Kind {
	switch x.d().Sign() {
	case 1:
		return KindNormal
	case 0:
		switch x.n().Sign() {
		case 1:
			return KindPositiveInfinity
		case -1:
			return KindNegativeInfinity
		default:
			return KindNaN
		}
	default:
		panic(`bigrat: kind: negative denominator`)
	}
}

// IsNaN reports whether x is NaN.
func (x Rat) IsNaN() bool { return x.Kind() == KindNaN }

// IsNormal reports whether x is a finite value.
func (x Rat) IsNormal() bool { return x.Kind() == KindNormal }

// IsInf reports whether x is an infinity, according to sign, in the same
// manner as [math.IsInf]. If sign > 0, IsInf reports whether x is positive
// infinity. If sign < 0, IsInf reports whether x is negative infinity. If
// sign == 0, IsInf reports whether x is either infinity.
func (x Rat) IsInf(sign int) bool {
	switch x.Kind() {
	case KindPositiveInfinity:
		return sign >= 0
	case KindNegativeInfinity:
		return sign <= 0
	default:
		return false
	}
}

// IsZero reports whether x is the number zero.
func (x Rat) IsZero() bool {
	return x.IsNormal() && x.num.Sign() == 0
}

// IsInt reports whether x is a normal value with a denominator of 1.
func (x Rat) IsInt() bool {
	return x.IsNormal() && x.den.Cmp(bigOne) == 0
}

// IsEvenInt reports whether x is an even integer.
func (x Rat) IsEvenInt() bool {
	return x.IsInt() && x.num.Bit(0) == 0
}

// IsOddInt reports whether x is an odd integer.
func (x Rat) IsOddInt() bool {
	return x.IsInt() && x.num.Bit(0) == 1
}

// Sign returns -1, 0, or 1, for negative, zero, or positive values,
// including the infinities. The sign of NaN is 0.
func (x Rat) Sign() int {
	return x.n().Sign()
}

// Num returns a copy of the numerator of x. The numerator of a special value
// is 1, -1, or 0, for positive infinity, negative infinity, or NaN.
func (x Rat) Num() *big.Int {
	return new(big.Int).Set(x.n())
}

// Denom returns a copy of the denominator of x, which is always positive
// for normal values, and zero for special values.
func (x Rat) Denom() *big.Int {
	return new(big.Int).Set(x.d())
}

// BigRat returns x as a [math/big.Rat], or false if x is not normal.
func (x Rat) BigRat() (*big.Rat, bool) {
	if !x.IsNormal() {
		return nil, false
	}
	return new(big.Rat).SetFrac(x.num, x.den), true
}
