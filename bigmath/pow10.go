package bigmath

import (
	"math/big"
)

const (
	pow10Table1Len = 32
	pow10Table2Len = 32
)

// pre-computed values of 10**i, where i < 32
var pow10Table1 [pow10Table1Len]big.Int

// pre-computed values of 10**(i*32), at index i
var pow10Table2 [pow10Table2Len]big.Int

func init() {
	pow10Table1[0].SetUint64(1)
	for i := 1; i < pow10Table1Len; i++ {
		pow10Table1[i].Mul(&pow10Table1[i-1], big.NewInt(10))
	}
	mul := new(big.Int).Mul(&pow10Table1[pow10Table1Len-1], big.NewInt(10))
	pow10Table2[0].SetUint64(1)
	for i := 1; i < pow10Table2Len; i++ {
		pow10Table2[i].Mul(&pow10Table2[i-1], mul)
	}
}

// Pow10 returns 10**n, as a newly allocated [math/big.Int]. Values of n up
// to 1023 are derived from pre-computed tables. A panic will occur if n is
// negative.
func Pow10(n int) *big.Int {
	if n < 0 {
		panic(`bigmath: pow10: negative exponent`)
	}
	if n < pow10Table1Len {
		return new(big.Int).Set(&pow10Table1[n])
	}
	if n < pow10Table1Len*pow10Table2Len {
		z := new(big.Int).Set(&pow10Table2[n/pow10Table1Len])
		return z.Mul(z, &pow10Table1[n%pow10Table1Len])
	}
	return pow10(n)
}

func pow10(n int) *big.Int {
	z := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	return z
}
