package bigrat

import (
	"math/big"
	"strings"

	"github.com/joeycumines/go-bigrat/bigmath"
)

// Parse parses s using InvariantSymbols, see Symbols.Parse.
func Parse(s string) (Rat, error) {
	return InvariantSymbols.Parse(s)
}

// MustParse is like Parse, but panics on error.
func MustParse(s string) Rat {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse parses a value in any of the following forms, ignoring surrounding
// whitespace:
//
//   - the NaN, PositiveInfinity, or NegativeInfinity symbols
//   - a fraction, `A/B`, where A and B are any of the below forms
//   - a decimal, `123.456`, where either the integer or fractional part
//     may be omitted, but not both
//   - a repeating decimal, `0.1(6)`, where the parenthesised digits repeat
//     indefinitely, and must be non-empty
//   - an integer, `123`
//
// The decimal and integer forms may be preceded by the NegativeSign symbol,
// or a `+`. Only ASCII digits are accepted. A fraction is evaluated as
// A divided by B, per Rat.Quo, e.g. `1/0` is positive infinity.
//
// On failure, the error will be a *ParseError.
func (s Symbols) Parse(str string) (Rat, error) {
	t := strings.TrimSpace(str)

	switch t {
	case ``:
		return NaN(), &ParseError{Input: str, Reason: `empty input`}
	case s.NaN:
		return NaN(), nil
	case s.PositiveInfinity:
		return special(1), nil
	case s.NegativeInfinity:
		return special(-1), nil
	}

	if a, b, ok := strings.Cut(t, s.FractionSeparator); ok {
		if strings.Contains(b, s.FractionSeparator) {
			return NaN(), &ParseError{Input: str, Reason: `multiple fraction separators`}
		}
		x, reason := s.parseDecimal(strings.TrimSpace(a))
		if reason != `` {
			return NaN(), &ParseError{Input: str, Reason: `numerator: ` + reason}
		}
		y, reason := s.parseDecimal(strings.TrimSpace(b))
		if reason != `` {
			return NaN(), &ParseError{Input: str, Reason: `denominator: ` + reason}
		}
		return x.Quo(y), nil
	}

	x, reason := s.parseDecimal(t)
	if reason != `` {
		return NaN(), &ParseError{Input: str, Reason: reason}
	}
	return x, nil
}

// parseDecimal parses the integer, decimal, and repeating decimal forms,
// returning a non-empty reason on failure
func (s Symbols) parseDecimal(t string) (Rat, string) {
	var neg bool
	if v, ok := strings.CutPrefix(t, s.NegativeSign); ok {
		neg, t = true, v
	} else if v, ok := strings.CutPrefix(t, `+`); ok {
		t = v
	}

	if t == `` {
		return NaN(), `missing digits`
	}

	intPart, fracPart, hasSep := strings.Cut(t, s.DecimalSeparator)

	if !hasSep {
		if !isDigits(t) {
			return NaN(), `invalid integer`
		}
		num := parseDigits(t)
		if neg {
			num.Neg(num)
		}
		return Rat{num: num, den: bigOne}, ``
	}

	if intPart == `` && fracPart == `` {
		return NaN(), `missing digits`
	}
	if intPart != `` && !isDigits(intPart) {
		return NaN(), `invalid integer part`
	}

	nonRepeating, repeating := fracPart, ``
	if i := strings.IndexByte(fracPart, '('); i >= 0 {
		if !strings.HasSuffix(fracPart, `)`) {
			return NaN(), `unterminated repeating group`
		}
		nonRepeating, repeating = fracPart[:i], fracPart[i+1:len(fracPart)-1]
		if repeating == `` {
			return NaN(), `empty repeating group`
		}
		if !isDigits(repeating) {
			return NaN(), `invalid repeating group`
		}
	}
	if nonRepeating != `` && !isDigits(nonRepeating) {
		return NaN(), `invalid fractional part`
	}

	// without a repeating group: (I*10^m + N) / 10^m
	// with a repeating group, where k = 10^r - 1:
	//     (I*10^m*k + N*k + R) / (10^m*k)
	m := len(nonRepeating)
	scale := bigmath.Pow10(m)
	num := parseDigits(intPart)
	num.Mul(num, scale)
	num.Add(num, parseDigits(nonRepeating))
	den := scale

	if repeating != `` {
		k := bigmath.Pow10(len(repeating))
		k.Sub(k, bigOne)
		num.Mul(num, k)
		num.Add(num, parseDigits(repeating))
		den.Mul(den, k)
	}

	if neg {
		num.Neg(num)
	}

	return newFrac(num, den), ``
}

func isDigits(s string) bool {
	if s == `` {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseDigits returns the value of the (validated) digits, with empty
// input being zero
func parseDigits(s string) *big.Int {
	v := new(big.Int)
	if s != `` {
		if _, ok := v.SetString(s, 10); !ok {
			panic(`bigrat: parse: unreachable`)
		}
	}
	return v
}
