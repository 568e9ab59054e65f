package bigrat

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/joeycumines/go-utilpkg/jsonenc"
)

var (
	_ fmt.Formatter    = Rat{}
	_ json.Marshaler   = Rat{}
	_ json.Unmarshaler = (*Rat)(nil)
)

// MarshalText implements [encoding.TextMarshaler], using the fraction form.
func (x Rat) MarshalText() ([]byte, error) {
	return InvariantSymbols.AppendFraction(nil, x), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], accepting any form
// supported by Parse.
func (x *Rat) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON implements [json.Marshaler], encoding x as a JSON string of
// the fraction form, e.g. `"-7/2"`, or `"NaN"`.
func (x Rat) MarshalJSON() ([]byte, error) {
	return x.AppendJSON(nil), nil
}

// AppendJSON is the append variant of MarshalJSON.
func (x Rat) AppendJSON(b []byte) []byte {
	return jsonenc.AppendString(b, x.FractionString())
}

// UnmarshalJSON implements [json.Unmarshaler], accepting a JSON string, in
// any form supported by Parse, or a JSON number, including exponents.
// Null is rejected, as it is not a meaningful value, and would otherwise
// be indistinguishable from NaN, the zero value.
func (x *Rat) UnmarshalJSON(b []byte) error {
	if string(b) == `null` {
		return errors.New(`bigrat: unmarshal json: invalid value: null`)
	}

	if len(b) != 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return x.UnmarshalText([]byte(s))
	}

	if !json.Valid(b) {
		return fmt.Errorf(`bigrat: unmarshal json: invalid value: %s`, b)
	}

	// JSON numbers, which are a subset of the formats supported by
	// big.Rat, falling back to it for exponents
	if v, err := Parse(string(b)); err == nil {
		*x = v
		return nil
	}
	if r, ok := new(big.Rat).SetString(string(b)); ok {
		*x = FromBigRat(r)
		return nil
	}
	return fmt.Errorf(`bigrat: unmarshal json: invalid value: %s`, b)
}
