// Package bigmath implements integer roots, wide shifts and decimal digit
// counting for [math/big.Int] values.
//
// All functions are pure. Inputs are never modified, and results are always
// newly allocated, so values may be shared freely between goroutines, as
// long as callers don't mutate them.
package bigmath
