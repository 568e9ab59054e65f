package bigrat

import (
	"bytes"
	"fmt"
	"math/big"
	"strconv"
	"unsafe"

	"golang.org/x/exp/slices"
)

// String returns the fraction form of x, see FractionString.
func (x Rat) String() string {
	return x.FractionString()
}

// FractionString formats x using InvariantSymbols, see
// Symbols.FractionString.
func (x Rat) FractionString() string {
	return InvariantSymbols.FractionString(x)
}

// DecimalString formats x using InvariantSymbols, see
// Symbols.DecimalString.
func (x Rat) DecimalString(maxDigits int, keepRepeating bool) string {
	return InvariantSymbols.DecimalString(x, maxDigits, keepRepeating)
}

// FractionString formats x as `num/den`, or just `num`, if x is an integer.
// Non-normal values are formatted as the corresponding symbol.
func (s Symbols) FractionString(x Rat) string {
	return bytesToString(s.AppendFraction(nil, x))
}

// AppendFraction is the append variant of Symbols.FractionString.
func (s Symbols) AppendFraction(b []byte, x Rat) []byte {
	if k := x.Kind(); k != KindNormal {
		return append(b, s.special(k)...)
	}
	b = s.appendInt(b, x.num)
	if x.den.Cmp(bigOne) != 0 {
		b = append(b, s.FractionSeparator...)
		b = x.den.Append(b, 10)
	}
	return b
}

// DecimalString formats x as a decimal, by long division, with at most
// maxDigits digits after the decimal separator, or unlimited, if maxDigits
// is negative. Non-normal values are formatted as the corresponding symbol.
//
// Each remainder is recorded, in order to detect the repeating group of a
// non-terminating expansion, which will be wrapped in parentheses, e.g.
// `1/6` formats as `0.1(6)`, if keepRepeating is true. A repeating group is
// detected if it completes within the digit budget. If keepRepeating is
// false, the non-repeating digits are followed by copies of the repeating
// group, up to maxDigits, or just one copy, if maxDigits is unlimited.
//
// Expansions that are cut short by maxDigits are truncated, not rounded,
// and have their trailing zeros removed. Use Rat.RoundDecimal to round
// first, if necessary.
//
// WARNING: An unlimited maxDigits will produce a repeating group of up to
// den-1 digits, which may be very large.
func (s Symbols) DecimalString(x Rat, maxDigits int, keepRepeating bool) string {
	return bytesToString(s.AppendDecimal(nil, x, maxDigits, keepRepeating))
}

// AppendDecimal is the append variant of Symbols.DecimalString.
func (s Symbols) AppendDecimal(b []byte, x Rat, maxDigits int, keepRepeating bool) []byte {
	if k := x.Kind(); k != KindNormal {
		return append(b, s.special(k)...)
	}

	q, r := new(big.Int).QuoRem(x.num, x.den, new(big.Int))
	q.Abs(q)
	r.Abs(r)

	var (
		digits []byte
		// position at which each remainder was first seen
		seen  map[string]int
		cycle = -1
	)
	if r.Sign() != 0 && maxDigits != 0 {
		seen = make(map[string]int)
		var d big.Int
		for maxDigits < 0 || len(digits) < maxDigits {
			key := string(r.Bytes())
			if pos, ok := seen[key]; ok {
				cycle = pos
				break
			}
			seen[key] = len(digits)
			r.Mul(r, big10)
			d.QuoRem(r, x.den, r)
			digits = append(digits, byte('0'+d.Int64()))
			if r.Sign() == 0 {
				break
			}
		}
		if cycle < 0 && r.Sign() != 0 {
			// the budget ran out, but the group may have just completed
			if pos, ok := seen[string(r.Bytes())]; ok {
				cycle = pos
			}
		}
	}

	if cycle >= 0 && !keepRepeating && maxDigits > 0 {
		// fill the budget with copies of the group
		group := digits[cycle:]
		for i := 0; len(digits) < maxDigits; i++ {
			digits = append(digits, group[i%len(group)])
		}
	}

	if cycle < 0 {
		for len(digits) != 0 && digits[len(digits)-1] == '0' {
			digits = digits[:len(digits)-1]
		}
	}

	// avoid formatting negative zero, which is possible due to truncation
	if x.num.Sign() < 0 && (q.Sign() != 0 || slices.ContainsFunc(digits, func(c byte) bool { return c != '0' })) {
		b = append(b, s.NegativeSign...)
	}
	b = q.Append(b, 10)

	if len(digits) == 0 {
		return b
	}

	b = append(b, s.DecimalSeparator...)
	if cycle >= 0 && keepRepeating {
		b = append(b, digits[:cycle]...)
		b = append(b, '(')
		b = append(b, digits[cycle:]...)
		return append(b, ')')
	}
	return append(b, digits...)
}

// appendInt appends v, using the NegativeSign symbol
func (s Symbols) appendInt(b []byte, v *big.Int) []byte {
	if v.Sign() < 0 {
		b = append(b, s.NegativeSign...)
		return new(big.Int).Abs(v).Append(b, 10)
	}
	return v.Append(b, 10)
}

// Format implements [fmt.Formatter]. The verbs `v` and `s` use the
// fraction form, `q` the quoted fraction form, and `f` and `F` the decimal
// form. If a precision is provided for `f` or `F`, the value will be
// rounded to that many decimal places, half to even, and padded with
// zeros. Otherwise, the repeating group, if any, will be in parentheses.
// Width and the `-` flag are supported.
func (x Rat) Format(f fmt.State, verb rune) {
	var b []byte
	switch verb {
	case 'v', 's':
		b = InvariantSymbols.AppendFraction(b, x)
	case 'q':
		b = strconv.AppendQuote(b, x.FractionString())
	case 'f', 'F':
		if prec, ok := f.Precision(); ok {
			b = appendFixed(b, x, prec)
		} else {
			b = InvariantSymbols.AppendDecimal(b, x, -1, true)
		}
	default:
		_, _ = fmt.Fprintf(f, `%%!%c(bigrat.Rat=%s)`, verb, x.String())
		return
	}

	if w, ok := f.Width(); ok && w > len(b) {
		pad := make([]byte, w-len(b))
		for i := range pad {
			pad[i] = ' '
		}
		if f.Flag('-') {
			b = append(b, pad...)
		} else {
			b = append(pad, b...)
		}
	}

	_, _ = f.Write(b)
}

// appendFixed formats x with exactly prec decimal places
func appendFixed(b []byte, x Rat, prec int) []byte {
	if !x.IsNormal() {
		return InvariantSymbols.AppendDecimal(b, x, -1, true)
	}
	start := len(b)
	b = InvariantSymbols.AppendDecimal(b, x.RoundDecimal(prec, ToEven), prec, false)
	if prec <= 0 {
		return b
	}
	decimals := 0
	if i := bytes.Index(b[start:], []byte(InvariantSymbols.DecimalSeparator)); i >= 0 {
		decimals = len(b) - start - i - len(InvariantSymbols.DecimalSeparator)
	} else {
		b = append(b, InvariantSymbols.DecimalSeparator...)
	}
	return appendZeros(b, prec-decimals)
}

func appendZeros(b []byte, n int) []byte {
	for range n {
		b = append(b, '0')
	}
	return b
}

func bytesToString(b []byte) string {
	// convert to string w/o alloc, using the unsafe package
	return unsafe.String(unsafe.SliceData(b), len(b))
}
