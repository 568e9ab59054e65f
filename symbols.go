package bigrat

import (
	"errors"
	"strings"
)

// Symbols configures the textual representation of values, for both
// parsing and formatting. The package level functions and the methods of
// Rat use InvariantSymbols.
type Symbols struct {
	NaN               string
	PositiveInfinity  string
	NegativeInfinity  string
	NegativeSign      string
	DecimalSeparator  string
	FractionSeparator string
}

// InvariantSymbols are the default symbols.
var InvariantSymbols = Symbols{
	NaN:               `NaN`,
	PositiveInfinity:  `Infinity`,
	NegativeInfinity:  `-Infinity`,
	NegativeSign:      `-`,
	DecimalSeparator:  `.`,
	FractionSeparator: `/`,
}

// Validate checks that the symbols are unambiguous, i.e. that every
// formatted value can be parsed back, using the same symbols.
func (s Symbols) Validate() error {
	for _, v := range [...]struct {
		name  string
		value string
	}{
		{`NaN`, s.NaN},
		{`PositiveInfinity`, s.PositiveInfinity},
		{`NegativeInfinity`, s.NegativeInfinity},
		{`NegativeSign`, s.NegativeSign},
		{`DecimalSeparator`, s.DecimalSeparator},
		{`FractionSeparator`, s.FractionSeparator},
	} {
		if v.value == `` {
			return errors.New(`bigrat: symbols: ` + v.name + ` must not be empty`)
		}
		if strings.TrimSpace(v.value) != v.value {
			return errors.New(`bigrat: symbols: ` + v.name + ` must not have surrounding whitespace`)
		}
		if strings.ContainsAny(v.value, `0123456789()`) {
			return errors.New(`bigrat: symbols: ` + v.name + ` must not contain digits or parentheses`)
		}
	}
	if s.NaN == s.PositiveInfinity || s.NaN == s.NegativeInfinity || s.PositiveInfinity == s.NegativeInfinity {
		return errors.New(`bigrat: symbols: special values must be distinct`)
	}
	if s.DecimalSeparator == s.FractionSeparator ||
		strings.Contains(s.DecimalSeparator, s.NegativeSign) ||
		strings.Contains(s.FractionSeparator, s.NegativeSign) ||
		strings.Contains(s.NegativeSign, s.DecimalSeparator) ||
		strings.Contains(s.NegativeSign, s.FractionSeparator) {
		return errors.New(`bigrat: symbols: separators and sign must be distinct`)
	}
	return nil
}

// special returns the symbol for a non-normal kind
func (s Symbols) special(k Kind) string {
	switch k {
	case KindNaN:
		return s.NaN
	case KindPositiveInfinity:
		return s.PositiveInfinity
	case KindNegativeInfinity:
		return s.NegativeInfinity
	default:
		panic(`bigrat: symbols: unexpected kind ` + k.String())
	}
}
