package bigrat

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

type (
	myInt16   int16
	myUint    uint
	myFloat32 float32
)

func pow2(n uint) Rat {
	return FromInt(new(big.Int).Lsh(big.NewInt(1), n))
}

func TestFrom(t *testing.T) {
	for _, tt := range [...]struct {
		x    Rat
		want string
	}{
		{From[int8](-5), `-5`},
		{From[int64](math.MinInt64), `-9223372036854775808`},
		{From[uint64](math.MaxUint64), `18446744073709551615`},
		{From[uintptr](7), `7`},
		{From[myInt16](-300), `-300`},
		{From[myUint](300), `300`},
		{From(0.1), `3602879701896397/36028797018963968`},
		{From[float32](0.1), `13421773/134217728`},
		{From[myFloat32](0.1), `13421773/134217728`},
		{From(math.Inf(-1)), `-Infinity`},
		{From(math.NaN()), `NaN`},
	} {
		if s := tt.x.String(); s != tt.want {
			t.Errorf(`got %s, expected %s`, s, tt.want)
		}
	}
	if v, err := ToChecked[float64](From(0.1)); err != nil || v != 0.1 {
		t.Fatal(v, err)
	}
}

func TestToChecked(t *testing.T) {
	if _, err := ToChecked[int32](pow2(40)); !errors.Is(err, ErrConversionOverflow) {
		t.Fatal(err)
	}
	if v, err := ToChecked[int8](FromInt64(127)); err != nil || v != 127 {
		t.Fatal(v, err)
	}
	if v, err := ToChecked[int8](FromInt64(-128)); err != nil || v != -128 {
		t.Fatal(v, err)
	}
	if _, err := ToChecked[int8](FromInt64(128)); !errors.Is(err, ErrConversionOverflow) {
		t.Fatal(err)
	}
	if _, err := ToChecked[int8](FromInt64(-129)); !errors.Is(err, ErrConversionOverflow) {
		t.Fatal(err)
	}
	if _, err := ToChecked[uint8](FromInt64(-1)); !errors.Is(err, ErrConversionOverflow) {
		t.Fatal(err)
	}
	if v, err := ToChecked[uint64](FromUint64(math.MaxUint64)); err != nil || v != math.MaxUint64 {
		t.Fatal(v, err)
	}
	if v, err := ToChecked[int64](FromInt64(math.MinInt64)); err != nil || v != math.MinInt64 {
		t.Fatal(v, err)
	}
	if _, err := ToChecked[int](New(1, 2)); !errors.Is(err, ErrConversionUndefined) {
		t.Fatal(err)
	}
	for _, x := range [...]Rat{NaN(), Inf(1), Inf(-1)} {
		if _, err := ToChecked[int](x); !errors.Is(err, ErrConversionUndefined) {
			t.Fatal(x, err)
		}
	}
	if _, err := ToChecked[myInt16](FromInt64(40000)); err == nil || err.Error() != `bigrat: conversion overflow: 40000 to bigrat.myInt16` {
		t.Fatal(err)
	}

	// floats
	if v, err := ToChecked[float32](New(1, 4)); err != nil || v != 0.25 {
		t.Fatal(v, err)
	}
	if _, err := ToChecked[float32](pow2(200)); !errors.Is(err, ErrConversionOverflow) {
		t.Fatal(err)
	}
	if v, err := ToChecked[float64](pow2(200)); err != nil || v != math.Ldexp(1, 200) {
		t.Fatal(v, err)
	}
	if v, err := ToChecked[float64](NaN()); err != nil || !math.IsNaN(v) {
		t.Fatal(v, err)
	}
	if v, err := ToChecked[float64](Inf(-1)); err != nil || !math.IsInf(v, -1) {
		t.Fatal(v, err)
	}
}

func TestToSaturating(t *testing.T) {
	for _, tt := range [...]struct {
		x    Rat
		want int8
	}{
		{FromInt64(1000), math.MaxInt8},
		{FromInt64(-1000), math.MinInt8},
		{FromInt64(-7), -7},
		{Inf(1), math.MaxInt8},
		{Inf(-1), math.MinInt8},
	} {
		if v, err := ToSaturating[int8](tt.x); err != nil || v != tt.want {
			t.Errorf(`%s: got %d, %v`, tt.x, v, err)
		}
	}
	if v, err := ToSaturating[uint16](FromInt64(-5)); err != nil || v != 0 {
		t.Fatal(v, err)
	}
	if v, err := ToSaturating[uint16](Inf(1)); err != nil || v != math.MaxUint16 {
		t.Fatal(v, err)
	}
	if v, err := ToSaturating[uint64](pow2(100)); err != nil || v != math.MaxUint64 {
		t.Fatal(v, err)
	}
	if v, err := ToSaturating[int64](pow2(100).Neg()); err != nil || v != math.MinInt64 {
		t.Fatal(v, err)
	}
	if _, err := ToSaturating[int](NaN()); !errors.Is(err, ErrConversionUndefined) {
		t.Fatal(err)
	}
	if _, err := ToSaturating[int](New(3, 2)); !errors.Is(err, ErrConversionUndefined) {
		t.Fatal(err)
	}
	if v, err := ToSaturating[float32](Inf(1)); err != nil || !math.IsInf(float64(v), 1) {
		t.Fatal(v, err)
	}
	if v, err := ToSaturating[float32](pow2(200).Neg()); err != nil || !math.IsInf(float64(v), -1) {
		t.Fatal(v, err)
	}
	if v, err := ToSaturating[myFloat32](NaN()); err != nil || v == v {
		t.Fatal(v, err)
	}
}

func TestToTruncating(t *testing.T) {
	for _, tt := range [...]struct {
		x    Rat
		want int8
	}{
		{New(7, 2), 3},
		{New(-7, 2), -3},
		{New(-1, 2), 0},
		{FromInt64(300), 44},
		{FromInt64(-129), 127},
		{New(601, 2), 44},
	} {
		if v, err := ToTruncating[int8](tt.x); err != nil || v != tt.want {
			t.Errorf(`%s: got %d, %v`, tt.x, v, err)
		}
	}
	if v, err := ToTruncating[uint8](FromInt64(-1)); err != nil || v != 255 {
		t.Fatal(v, err)
	}
	if v, err := ToTruncating[int64](pow2(64).Add(FromInt64(5))); err != nil || v != 5 {
		t.Fatal(v, err)
	}
	if v, err := ToTruncating[uint64](FromInt64(-1)); err != nil || v != math.MaxUint64 {
		t.Fatal(v, err)
	}
	if v, err := ToTruncating[myUint](New(-3, 2)); err != nil || v != myUint(math.MaxUint) {
		t.Fatal(v, err)
	}
	for _, x := range [...]Rat{NaN(), Inf(1), Inf(-1)} {
		if _, err := ToTruncating[int](x); !errors.Is(err, ErrConversionUndefined) {
			t.Fatal(x, err)
		}
	}
	if v, err := ToTruncating[float64](New(1, 3)); err != nil || v != 1.0/3 {
		t.Fatal(v, err)
	}
}

func TestConvert(t *testing.T) {
	x := FromInt64(1000)
	if _, err := Convert[int8](x, Checked); !errors.Is(err, ErrConversionOverflow) {
		t.Fatal(err)
	}
	if v, err := Convert[int8](x, Saturating); err != nil || v != 127 {
		t.Fatal(v, err)
	}
	if v, err := Convert[int8](x, Truncating); err != nil || v != -24 {
		t.Fatal(v, err)
	}
	func() {
		defer func() {
			if r := recover(); r != `bigrat: convert: invalid policy` {
				t.Fatal(r)
			}
		}()
		_, _ = Convert[int8](x, Policy(9))
		t.Fatal(`expected panic`)
	}()
}

func TestRat_Int64(t *testing.T) {
	if v, err := New(-84, 2).Int64(); err != nil || v != -42 {
		t.Fatal(v, err)
	}
	if _, err := pow2(63).Int64(); !errors.Is(err, ErrConversionOverflow) {
		t.Fatal(err)
	}
}

func TestPolicy_String(t *testing.T) {
	for _, tt := range [...]struct {
		p Policy
		s string
	}{
		{Checked, `Checked`},
		{Saturating, `Saturating`},
		{Truncating, `Truncating`},
		{Policy(5), `Policy(5)`},
	} {
		if s := tt.p.String(); s != tt.s {
			t.Error(s)
		}
	}
}

func TestInfoOf(t *testing.T) {
	for _, tt := range [...]struct {
		info numberInfo
		want numberInfo
	}{
		{infoOf[int8](), numberInfo{bits: 8, signed: true}},
		{infoOf[uint16](), numberInfo{bits: 16}},
		{infoOf[myInt16](), numberInfo{bits: 16, signed: true}},
		{infoOf[int64](), numberInfo{bits: 64, signed: true}},
		{infoOf[uint64](), numberInfo{bits: 64}},
		{infoOf[float32](), numberInfo{bits: 32, signed: true, float: true}},
		{infoOf[float64](), numberInfo{bits: 64, signed: true, float: true}},
	} {
		if tt.info != tt.want {
			t.Errorf(`got %+v, expected %+v`, tt.info, tt.want)
		}
	}
}
