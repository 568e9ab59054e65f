package bigrat

import (
	"fmt"
	"math"
	"math/big"
	"unsafe"

	"golang.org/x/exp/constraints"
)

type (
	// Number models the native numeric types that may be converted to and
	// from Rat, including named types.
	Number interface {
		constraints.Integer | constraints.Float
	}

	// Policy controls the behavior of conversions out of Rat, for values
	// that are not exactly representable by the target type.
	Policy uint8

	numberInfo struct {
		bits   uint
		signed bool
		float  bool
	}
)

const (
	// Checked conversions fail with ErrConversionOverflow if the value is
	// out of range, and require values converted to integers to be
	// integers.
	Checked Policy = iota
	// Saturating conversions substitute the nearest representable extreme
	// for out of range values, and the infinities for floats.
	Saturating
	// Truncating conversions to integers truncate toward zero, then wrap,
	// per Go's conversion rules for integers.
	Truncating
)

var (
	mask64 = new(big.Int).SetUint64(math.MaxUint64)
)

func (p Policy) String() string {
	switch p {
	case Checked:
		return `Checked`
	case Saturating:
		return `Saturating`
	case Truncating:
		return `Truncating`
	default:
		return fmt.Sprintf(`Policy(%d)`, uint8(p))
	}
}

// From returns the exact value of v. Floats are converted per FromFloat64
// and FromFloat32, i.e. bit-exact.
func From[T Number](v T) Rat {
	info := infoOf[T]()
	switch {
	case info.float && info.bits == 32:
		return FromFloat32(float32(v))
	case info.float:
		return FromFloat64(float64(v))
	case info.signed:
		return FromInt64(int64(v))
	default:
		return FromUint64(uint64(v))
	}
}

// Convert converts x to T, using the given policy. A panic will occur if
// the policy is not valid.
func Convert[T Number](x Rat, policy Policy) (T, error) {
	switch policy {
	case Checked:
		return ToChecked[T](x)
	case Saturating:
		return ToSaturating[T](x)
	case Truncating:
		return ToTruncating[T](x)
	default:
		panic(`bigrat: convert: invalid policy`)
	}
}

// ToChecked converts x to T, failing with ErrConversionOverflow if x is out
// of range. Integer targets require x to be an integer, and float targets
// are rounded to nearest, with special values mapping directly.
func ToChecked[T Number](x Rat) (T, error) {
	return convert[T](x, Checked)
}

// ToSaturating converts x to T, clamping out of range values to the
// nearest extreme of T. For integer targets, x must be an integer or an
// infinity, and NaN is not supported. Float targets saturate to infinity.
func ToSaturating[T Number](x Rat) (T, error) {
	return convert[T](x, Saturating)
}

// ToTruncating converts x to T. Integer targets are truncated toward zero,
// then wrapped to the width of T, and special values are not supported.
func ToTruncating[T Number](x Rat) (T, error) {
	return convert[T](x, Truncating)
}

// Int64 is equivalent to ToChecked[int64](x).
func (x Rat) Int64() (int64, error) {
	return ToChecked[int64](x)
}

func convert[T Number](x Rat, policy Policy) (T, error) {
	info := infoOf[T]()
	if info.float {
		return convertFloat[T](x, policy, info)
	}
	return convertInt[T](x, policy, info)
}

func convertFloat[T Number](x Rat, policy Policy, info numberInfo) (T, error) {
	var v float64
	if info.bits == 32 {
		v = float64(x.Float32())
	} else {
		v = x.Float64()
	}
	if policy == Checked && x.IsNormal() && math.IsInf(v, 0) {
		var zero T
		return zero, fmt.Errorf(`%w: %s to %T`, ErrConversionOverflow, x, zero)
	}
	return T(v), nil
}

func convertInt[T Number](x Rat, policy Policy, info numberInfo) (T, error) {
	var zero T

	switch x.Kind() {
	case KindNaN:
		return zero, fmt.Errorf(`%w: %s to %T`, ErrConversionUndefined, x, zero)
	case KindPositiveInfinity, KindNegativeInfinity:
		if policy != Saturating {
			return zero, fmt.Errorf(`%w: %s to %T`, ErrConversionUndefined, x, zero)
		}
		lo, hi := info.bounds()
		if x.Sign() < 0 {
			return fromBigInt[T](lo, info), nil
		}
		return fromBigInt[T](hi, info), nil
	}

	if policy == Truncating {
		q := new(big.Int).Quo(x.num, x.den)
		// two's complement, so the low bits are the wrapped value
		q.And(q, mask64)
		return T(q.Uint64()), nil
	}

	if x.den.Cmp(bigOne) != 0 {
		return zero, fmt.Errorf(`%w: non-integer %s to %T`, ErrConversionUndefined, x, zero)
	}

	lo, hi := info.bounds()
	switch {
	case x.num.Cmp(lo) < 0:
		if policy == Checked {
			return zero, fmt.Errorf(`%w: %s to %T`, ErrConversionOverflow, x, zero)
		}
		return fromBigInt[T](lo, info), nil
	case x.num.Cmp(hi) > 0:
		if policy == Checked {
			return zero, fmt.Errorf(`%w: %s to %T`, ErrConversionOverflow, x, zero)
		}
		return fromBigInt[T](hi, info), nil
	}

	return fromBigInt[T](x.num, info), nil
}

// fromBigInt converts v, which must be within the bounds of T
func fromBigInt[T Number](v *big.Int, info numberInfo) T {
	if info.signed {
		return T(v.Int64())
	}
	return T(v.Uint64())
}

// bounds returns the inclusive range of an integer type
func (x numberInfo) bounds() (lo, hi *big.Int) {
	if x.signed {
		hi = new(big.Int).Lsh(bigOne, x.bits-1)
		lo = new(big.Int).Neg(hi)
		hi.Sub(hi, bigOne)
		return lo, hi
	}
	hi = new(big.Int).Lsh(bigOne, x.bits)
	return bigZero, hi.Sub(hi, bigOne)
}

func infoOf[T Number]() numberInfo {
	var zero T
	one, two := T(1), T(2)
	return numberInfo{
		bits:   uint(unsafe.Sizeof(zero)) * 8,
		signed: zero-one < zero,
		float:  one/two != zero,
	}
}
