package bigrat

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"
)

func TestFromFloat64(t *testing.T) {
	for _, tt := range [...]struct {
		v    float64
		want string
	}{
		{0, `0`},
		{math.Copysign(0, -1), `0`},
		{1, `1`},
		{-2.5, `-5/2`},
		{0.1, `3602879701896397/36028797018963968`},
		{1 << 60, `1152921504606846976`},
		{math.SmallestNonzeroFloat64, `1/` + new(big.Int).Lsh(big.NewInt(1), 1074).String()},
		{math.MaxFloat64, new(big.Int).Lsh(big.NewInt(1<<53-1), 971).String()},
		{math.Inf(1), `Infinity`},
		{math.Inf(-1), `-Infinity`},
		{math.NaN(), `NaN`},
	} {
		if s := FromFloat64(tt.v).String(); s != tt.want {
			t.Errorf(`%v: got %s, expected %s`, tt.v, s, tt.want)
		}
	}
}

func TestFromFloat32(t *testing.T) {
	for _, tt := range [...]struct {
		v    float32
		want string
	}{
		{0, `0`},
		{-0.75, `-3/4`},
		{0.1, `13421773/134217728`},
		{math.SmallestNonzeroFloat32, `1/` + new(big.Int).Lsh(big.NewInt(1), 149).String()},
		{float32(math.Inf(-1)), `-Infinity`},
		{float32(math.NaN()), `NaN`},
	} {
		if s := FromFloat32(tt.v).String(); s != tt.want {
			t.Errorf(`%v: got %s, expected %s`, tt.v, s, tt.want)
		}
	}
}

func TestFromFloat64_exact(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for range 10000 {
		v := math.Float64frombits(r.Uint64())
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		x := FromFloat64(v)
		want, _ := new(big.Float).SetFloat64(v).Rat(nil)
		got, _ := x.BigRat()
		if got.Cmp(want) != 0 {
			t.Fatalf(`%v: got %s, expected %s`, v, got, want)
		}
		if f := x.Float64(); f != v {
			t.Fatalf(`%v: round trip: %v`, v, f)
		}
	}
}

func TestFromFloat32_exact(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	for range 10000 {
		v := math.Float32frombits(r.Uint32())
		if v != v || math.IsInf(float64(v), 0) {
			continue
		}
		x := FromFloat32(v)
		want, _ := new(big.Float).SetFloat64(float64(v)).Rat(nil)
		got, _ := x.BigRat()
		if got.Cmp(want) != 0 {
			t.Fatalf(`%v: got %s, expected %s`, v, got, want)
		}
		if f := x.Float32(); f != v {
			t.Fatalf(`%v: round trip: %v`, v, f)
		}
	}
}

func randBigInt(r *rand.Rand, maxBits int) *big.Int {
	v := new(big.Int)
	for range r.IntN(maxBits/32 + 1) {
		v.Lsh(v, 32)
		v.Or(v, big.NewInt(int64(r.Uint32())))
	}
	v.Rsh(v, uint(r.IntN(32)))
	return v
}

// both conversions must match the correctly rounded results of big.Rat
func TestRat_Float64_correctlyRounded(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	for i := range 5000 {
		num := randBigInt(r, 1300)
		den := randBigInt(r, 1300)
		if den.Sign() == 0 {
			continue
		}
		if i%2 == 1 {
			num.Neg(num)
		}
		x := NewFrac(num, den)
		br, _ := x.BigRat()

		want64, _ := br.Float64()
		if got := x.Float64(); got != want64 || math.Signbit(got) != math.Signbit(want64) {
			t.Fatalf(`%s: float64: got %v, expected %v`, x, got, want64)
		}

		want32, _ := br.Float32()
		if got := x.Float32(); got != want32 || math.Signbit(float64(got)) != math.Signbit(float64(want32)) {
			t.Fatalf(`%s: float32: got %v, expected %v`, x, got, want32)
		}
	}
}

func TestRat_Float64(t *testing.T) {
	for _, tt := range [...]struct {
		x    Rat
		want float64
	}{
		{Zero(), 0},
		{New(1, 3), 1.0 / 3},
		{New(2, 3), 2.0 / 3},
		{New(-22, 7), -22.0 / 7},
		{FromInt(new(big.Int).Lsh(big.NewInt(1), 1100)), math.Inf(1)},
		{FromInt(new(big.Int).Lsh(big.NewInt(-1), 1023)), -0x1p1023},
		{NewFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 1100)), 0},
		{NewFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 1075)), 0},
		{NewFrac(big.NewInt(3), new(big.Int).Lsh(big.NewInt(1), 1076)), math.SmallestNonzeroFloat64},
		{Inf(1), math.Inf(1)},
		{Inf(-1), math.Inf(-1)},
	} {
		if got := tt.x.Float64(); got != tt.want {
			t.Errorf(`%s: got %v, expected %v`, tt.x, got, tt.want)
		}
	}
	if v := NaN().Float64(); !math.IsNaN(v) {
		t.Error(v)
	}
	if v := NewFrac(big.NewInt(-1), new(big.Int).Lsh(big.NewInt(1), 1100)).Float64(); v != 0 || !math.Signbit(v) {
		t.Error(v)
	}
	if v := NaN().Float32(); v == v {
		t.Error(v)
	}
	if v := New(1, 3).Float32(); v != float32(1.0)/3 {
		t.Error(v)
	}
}
