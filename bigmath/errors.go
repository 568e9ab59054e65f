package bigmath

import (
	"errors"
)

var (
	// ErrNegativeArgument indicates a root of a negative value was requested,
	// where it is undefined.
	ErrNegativeArgument = errors.New(`bigmath: negative argument`)

	// ErrInvalidExponent indicates a root index less than 2.
	ErrInvalidExponent = errors.New(`bigmath: invalid exponent`)

	// ErrNoRealRoot indicates an even root of a negative value.
	ErrNoRealRoot = errors.New(`bigmath: no real root`)
)
