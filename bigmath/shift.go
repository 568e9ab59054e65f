package bigmath

import (
	"math"
	"math/big"
)

// maxShift is the largest shift count passed to [math/big.Int.Lsh] or
// [math/big.Int.Rsh] in a single call.
const maxShift = uint64(math.MaxInt)

// Lsh returns x << n, supporting shift counts that exceed the range of the
// platform's uint, by shifting in chunks of at most [math.MaxInt] bits.
func Lsh(x *big.Int, n uint64) *big.Int {
	z := new(big.Int).Set(x)
	if z.Sign() == 0 {
		return z
	}
	for n > 0 {
		s := min(n, maxShift)
		z.Lsh(z, uint(s))
		n -= s
	}
	return z
}

// Rsh returns x >> n, supporting shift counts that exceed the range of the
// platform's uint. Like [math/big.Int.Rsh], the shift is arithmetic, i.e.
// negative values round toward negative infinity, except that once n
// reaches the bit length of x the result is 0, for either sign.
func Rsh(x *big.Int, n uint64) *big.Int {
	if n >= uint64(x.BitLen()) {
		return new(big.Int)
	}
	z := new(big.Int).Set(x)
	for n > 0 {
		s := min(n, maxShift)
		z.Rsh(z, uint(s))
		n -= s
	}
	return z
}
