package bigmath

import (
	"math/big"
	"strings"
	"testing"
)

func TestDecimalDigits(t *testing.T) {
	for _, tt := range [...]struct {
		name string
		v    string
		want int
	}{
		{`zero`, `0`, 1},
		{`one`, `1`, 1},
		{`nine`, `9`, 1},
		{`ten`, `10`, 2},
		{`negative`, `-12345`, 5},
		{`max uint64`, `18446744073709551615`, 20},
		{`power of ten boundary below`, strings.Repeat(`9`, 40), 40},
		{`power of ten boundary`, `1` + strings.Repeat(`0`, 40), 41},
		{`power of ten boundary above`, `1` + strings.Repeat(`0`, 39) + `1`, 41},
		{`very large`, `1` + strings.Repeat(`0`, 999), 1000},
		{`very large nines`, strings.Repeat(`9`, 999), 999},
	} {
		t.Run(tt.name, func(t *testing.T) {
			v := bi(t, tt.v)
			if got := DecimalDigits(v); got != tt.want {
				t.Errorf(`DecimalDigits(%s) = %d, want %d`, tt.v, got, tt.want)
			}
		})
	}
}

func TestDecimalDigits_matchesText(t *testing.T) {
	v := big.NewInt(7)
	for range 300 {
		want := len(new(big.Int).Abs(v).Text(10))
		if got := DecimalDigits(v); got != want {
			t.Fatalf(`DecimalDigits(%s) = %d, want %d`, v, got, want)
		}
		v.Mul(v, big.NewInt(-7))
	}
}
