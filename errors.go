package bigrat

import (
	"errors"
	"strconv"

	"github.com/joeycumines/go-bigrat/bigmath"
)

var (
	// ErrNegativeArgument indicates a square root of a negative value.
	ErrNegativeArgument = bigmath.ErrNegativeArgument

	// ErrInvalidExponent indicates an invalid exponent or root index, e.g.
	// zero raised to a non-positive power.
	ErrInvalidExponent = bigmath.ErrInvalidExponent

	// ErrNoRealRoot indicates an even root of a negative value.
	ErrNoRealRoot = bigmath.ErrNoRealRoot

	// ErrIncomparableNaN indicates an ordering comparison involving NaN.
	ErrIncomparableNaN = errors.New(`bigrat: NaN is not comparable`)

	// ErrDivisionUndefined indicates a remainder with a non-normal operand,
	// or a zero divisor.
	ErrDivisionUndefined = errors.New(`bigrat: division undefined`)

	// ErrParseFormat indicates malformed textual input, see also ParseError.
	ErrParseFormat = errors.New(`bigrat: invalid format`)

	// ErrConversionOverflow indicates a checked conversion out of the range
	// of the target type.
	ErrConversionOverflow = errors.New(`bigrat: conversion overflow`)

	// ErrConversionUndefined indicates a value that has no representation
	// in the target type, under the requested policy, e.g. NaN to int.
	ErrConversionUndefined = errors.New(`bigrat: conversion undefined`)

	// ErrInvalidConstruction indicates a request to construct a special
	// value of kind KindNormal.
	ErrInvalidConstruction = errors.New(`bigrat: invalid construction`)

	// ErrNotNormal indicates an operation that is only defined for normal
	// (finite) values.
	ErrNotNormal = errors.New(`bigrat: value is not normal`)
)

// ParseError is returned by the parse functions, and wraps ErrParseFormat.
type ParseError struct {
	// Input is the complete string that failed to parse.
	Input string
	// Reason describes the failure.
	Reason string
}

func (x *ParseError) Error() string {
	return `bigrat: parse ` + strconv.Quote(x.Input) + `: ` + x.Reason
}

func (x *ParseError) Unwrap() error {
	return ErrParseFormat
}
