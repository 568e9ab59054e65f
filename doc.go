// Package bigrat implements an exact, arbitrary-precision rational number
// type, [Rat], extended with IEEE-754 style non-finite values (NaN and
// positive/negative infinity).
//
// Values are immutable. Every operation returns a new [Rat], and the
// [math/big.Int] values backing a [Rat] are never modified once it has been
// constructed, making it safe to share values between goroutines without
// synchronisation.
//
// Arithmetic follows IEEE-754 propagation rules for the special values, e.g.
// `0 * Inf` and `Inf - Inf` are NaN, while `1 / 0` is positive infinity.
// Unlike floats, NaN is equal to NaN, as reported by [Rat.Equal], but is not
// ordered, i.e. [Compare] fails with [ErrIncomparableNaN].
//
// Two textual forms are supported, the fraction form ("-7/2") and the
// decimal form ("-3.5", or "0.1(6)" with a repeating group), see [Parse],
// [Rat.String] and [Rat.DecimalString]. Conversions to and from the native
// numeric types are provided by [From], [Convert], and friends, with
// float values decomposed bit-for-bit.
package bigrat
