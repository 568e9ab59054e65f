package bigmath

import (
	"math"
	"math/big"
)

const log10_2 = 0.3010299956639812

// DecimalDigits returns the number of base 10 digits required to format the
// absolute value of v, which is 1 for zero.
//
// The count is estimated from the leading 64 bits, using [math.Log10], then
// corrected against the exact power of ten, in either direction, as the
// estimate may be off by one at power of ten boundaries.
func DecimalDigits(v *big.Int) int {
	if v.Sign() == 0 {
		return 1
	}

	a := new(big.Int).Abs(v)

	var est float64
	if n := a.BitLen(); n <= 64 {
		est = math.Log10(float64(a.Uint64()))
	} else {
		shift := n - 64
		top := Rsh(a, uint64(shift))
		est = math.Log10(float64(top.Uint64())) + float64(shift)*log10_2
	}

	digits := int(math.Floor(est)) + 1
	if digits < 1 {
		digits = 1
	}

	if a.Cmp(Pow10(digits)) >= 0 {
		digits++
	} else if digits > 1 && a.Cmp(Pow10(digits-1)) < 0 {
		digits--
	}

	return digits
}
