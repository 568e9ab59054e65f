package bigrat

import (
	"errors"
	"math"
	"testing"

	"github.com/joeycumines/go-bigrat/bigmath"
)

func TestRat_Decompose(t *testing.T) {
	for _, tt := range [...]struct {
		x, i, f string
	}{
		{`-17/10`, `-1`, `-7/10`},
		{`7/2`, `3`, `1/2`},
		{`5`, `5`, `0`},
		{`0`, `0`, `0`},
		{`-1/3`, `0`, `-1/3`},
		{`100000000000000000000001/100000000000000000000`, `1000`, `1/100000000000000000000`},
	} {
		i, f, err := MustParse(tt.x).Decompose()
		if err != nil {
			t.Fatal(err)
		}
		if s := i.String(); s != tt.i {
			t.Errorf(`%s: unexpected integer part: %s`, tt.x, s)
		}
		if s := f.String(); s != tt.f {
			t.Errorf(`%s: unexpected fraction: %s`, tt.x, s)
		}
		if v := i.Add(f); !v.Equal(MustParse(tt.x)) {
			t.Errorf(`%s: parts sum to %s`, tt.x, v)
		}
	}
	for _, x := range [...]Rat{NaN(), Inf(1), Inf(-1)} {
		if _, _, err := x.Decompose(); !errors.Is(err, ErrNotNormal) {
			t.Error(x, err)
		}
	}
}

func TestRat_SqrtExact(t *testing.T) {
	for _, tt := range [...]struct {
		x    string
		root string
		ok   bool
	}{
		{`9/4`, `3/2`, true},
		{`0`, `0`, true},
		{`1`, `1`, true},
		{`152415787532388367504942236884722755800955129/16`, `12345678901234567890123/4`, true},
		{`2`, `NaN`, false},
		{`9/2`, `NaN`, false},
		{`-4`, `NaN`, false},
		{`Infinity`, `NaN`, false},
		{`NaN`, `NaN`, false},
	} {
		root, ok := MustParse(tt.x).SqrtExact()
		if ok != tt.ok || root.String() != tt.root {
			t.Errorf(`sqrt(%s) = %s, %v`, tt.x, root, ok)
		}
	}
}

func TestRat_Sqrt(t *testing.T) {
	root, converged, err := New(22, 7).Sqrt(5, 64)
	if err != nil || !converged {
		t.Fatal(err, converged)
	}
	if d := math.Abs(root.Float64() - math.Sqrt(22.0/7.0)); d >= 1e-5 {
		t.Fatal(root, d)
	}

	// exact roots short-circuit
	if root, converged, err := New(49, 100).Sqrt(0, 0); err != nil || !converged || root.String() != `7/10` {
		t.Fatal(root, converged, err)
	}

	// the first Newton step from the seed of 1
	if root, converged, err := FromInt64(2).Sqrt(10, 1); err != nil || converged || root.String() != `3/2` {
		t.Fatal(root, converged, err)
	}
	if root, converged, err := FromInt64(2).Sqrt(0, 1); err != nil || !converged || root.String() != `3/2` {
		t.Fatal(root, converged, err)
	}

	if root, converged, err := NaN().Sqrt(5, 10); err != nil || !converged || !root.IsNaN() {
		t.Fatal(root, converged, err)
	}
	if root, converged, err := Inf(1).Sqrt(5, 10); err != nil || !converged || !root.IsInf(1) {
		t.Fatal(root, converged, err)
	}
	for _, x := range [...]Rat{FromInt64(-1), New(-1, 9), Inf(-1)} {
		if _, _, err := x.Sqrt(5, 10); !errors.Is(err, ErrNegativeArgument) {
			t.Error(x, err)
		}
	}
}

func TestRat_Sqrt_precision(t *testing.T) {
	for _, tt := range [...]struct {
		x         Rat
		precision int
	}{
		{FromInt64(2), 30},
		{New(1, 3), 20},
		{New(1_000_000_007, 13), 15},
		{New(1, 1_000_000_007), 25},
	} {
		root, converged, err := tt.x.Sqrt(tt.precision, 200)
		if err != nil || !converged {
			t.Fatal(tt.x, err, converged)
		}
		// the error in the root is at most the last step, so
		// |root^2 - x| < 3 * root * 10**-precision
		diff := root.Mul(root).Sub(tt.x).Abs()
		bound := root.Mul(FromInt64(3)).Quo(FromInt(bigmath.Pow10(tt.precision)))
		if c, _ := Compare(diff, bound); c >= 0 {
			t.Errorf(`sqrt(%s) = %s: squared error %s`, tt.x, root.DecimalString(tt.precision+5, false), diff.DecimalString(tt.precision+5, false))
		}
	}
}

func TestRat_Pow(t *testing.T) {
	for _, tt := range [...]struct {
		x    string
		n    int
		want string
	}{
		{`2/3`, 3, `8/27`},
		{`-2`, 3, `-8`},
		{`-2`, -2, `1/4`},
		{`2/3`, -2, `9/4`},
		{`-2/3`, -3, `-27/8`},
		{`5`, 0, `1`},
		{`5`, 1, `5`},
		{`0`, 2, `0`},
		{`10`, 30, `1000000000000000000000000000000`},
		{`1`, math.MinInt, `1`},
		{`-1`, math.MinInt, `1`},
		{`-1`, math.MaxInt, `-1`},
		{`Infinity`, 0, `1`},
		{`Infinity`, 3, `Infinity`},
		{`-Infinity`, 2, `Infinity`},
		{`-Infinity`, 3, `-Infinity`},
		{`-Infinity`, -1, `0`},
		{`Infinity`, -2, `0`},
		{`NaN`, 2, `NaN`},
		{`NaN`, 0, `NaN`},
	} {
		v, err := MustParse(tt.x).Pow(tt.n)
		if err != nil {
			t.Fatal(tt.x, tt.n, err)
		}
		if s := v.String(); s != tt.want {
			t.Errorf(`%s^%d = %s, expected %s`, tt.x, tt.n, s, tt.want)
		}
	}
	for _, n := range [...]int{0, -1, math.MinInt} {
		if _, err := Zero().Pow(n); !errors.Is(err, ErrInvalidExponent) {
			t.Error(n, err)
		}
	}
}
