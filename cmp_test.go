package bigrat

import (
	"errors"
	"testing"
)

func TestCompare(t *testing.T) {
	for _, tt := range [...]struct {
		a, b string
		c    int
	}{
		{`-Infinity`, `1`, -1},
		{`-Infinity`, `-Infinity`, 0},
		{`Infinity`, `Infinity`, 0},
		{`-Infinity`, `Infinity`, -1},
		{`Infinity`, `-1000000000000000000000000`, 1},
		{`1/3`, `1/2`, -1},
		{`1/2`, `1/3`, 1},
		{`-1/2`, `-1/3`, -1},
		{`2/4`, `1/2`, 0},
		{`0`, `-0`, 0},
		{`-7/2`, `-3.5`, 0},
		{`123456789012345678901234567890/7`, `123456789012345678901234567891/7`, -1},
	} {
		c, err := Compare(MustParse(tt.a), MustParse(tt.b))
		if err != nil {
			t.Fatal(err)
		}
		if c != tt.c {
			t.Errorf(`Compare(%s, %s) = %d, expected %d`, tt.a, tt.b, c, tt.c)
		}
		if c, _ := MustParse(tt.b).Cmp(MustParse(tt.a)); c != -tt.c {
			t.Errorf(`Cmp(%s, %s) = %d, expected %d`, tt.b, tt.a, c, -tt.c)
		}
	}
}

func TestCompare_nan(t *testing.T) {
	for _, tt := range [...][2]Rat{
		{NaN(), NaN()},
		{NaN(), One()},
		{Inf(-1), NaN()},
		{{}, Zero()},
	} {
		if _, err := Compare(tt[0], tt[1]); !errors.Is(err, ErrIncomparableNaN) {
			t.Errorf(`Compare(%s, %s): unexpected error: %v`, tt[0], tt[1], err)
		}
	}
}

func TestRat_Equal(t *testing.T) {
	for _, tt := range [...]struct {
		a, b  Rat
		equal bool
	}{
		{NaN(), NaN(), true},
		{NaN(), Rat{}, true},
		{Inf(1), New(3, 0), true},
		{Inf(-1), New(-3, 0), true},
		{Inf(1), Inf(-1), false},
		{NaN(), Zero(), false},
		{Zero(), New(0, 7), true},
		{New(1, 2), New(2, 4), true},
		{New(1, 2), New(-1, 2), false},
		{New(1, 2), New(1, 3), false},
	} {
		if v := tt.a.Equal(tt.b); v != tt.equal {
			t.Errorf(`%s.Equal(%s) = %v`, tt.a, tt.b, v)
		}
		if v := tt.b.Equal(tt.a); v != tt.equal {
			t.Errorf(`%s.Equal(%s) = %v`, tt.b, tt.a, v)
		}
	}
}

func TestMinMaxClamp(t *testing.T) {
	a, b := New(1, 3), New(1, 2)
	if v, err := Min(a, b); err != nil || !v.Equal(a) {
		t.Fatal(v, err)
	}
	if v, err := Max(a, b); err != nil || !v.Equal(b) {
		t.Fatal(v, err)
	}
	if v, err := Max(Inf(-1), a); err != nil || !v.Equal(a) {
		t.Fatal(v, err)
	}
	if _, err := Min(a, NaN()); !errors.Is(err, ErrIncomparableNaN) {
		t.Fatal(err)
	}
	if _, err := Max(NaN(), a); !errors.Is(err, ErrIncomparableNaN) {
		t.Fatal(err)
	}
	for _, tt := range [...]struct {
		x, lo, hi, want string
	}{
		{`5`, `0`, `10`, `5`},
		{`-5`, `0`, `10`, `0`},
		{`15`, `0`, `10`, `10`},
		{`Infinity`, `0`, `10`, `10`},
		{`-Infinity`, `-1/2`, `1/2`, `-1/2`},
	} {
		v, err := Clamp(MustParse(tt.x), MustParse(tt.lo), MustParse(tt.hi))
		if err != nil {
			t.Fatal(err)
		}
		if s := v.String(); s != tt.want {
			t.Errorf(`Clamp(%s, %s, %s) = %s`, tt.x, tt.lo, tt.hi, s)
		}
	}
	if _, err := Clamp(NaN(), Zero(), One()); !errors.Is(err, ErrIncomparableNaN) {
		t.Fatal(err)
	}
}
