package price

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// MaxExponent bounds the absolute decimal exponent of a number token; 1e200000000 prints as 200 million digits
const MaxExponent = 64

// Amount is a price field as it travels through JSON
// numbers are taken as-is, strings go through Parse, anything else is rejected
type Amount struct {
	decimal.Decimal
	set bool
}

// NewAmount wraps d as a set Amount
func NewAmount(d decimal.Decimal) Amount { return Amount{Decimal: d, set: true} }

// IsSet reports whether a value was supplied (null and absent leave it unset)
func (a Amount) IsSet() bool { return a.set }

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return &Error{Value: "", Reason: ReasonEmpty}
	}

	switch c := b[0]; {
	case c == 'n' && bytes.Equal(b, []byte("null")):
		*a = Amount{}
		return nil

	case c == '-' || (c >= '0' && c <= '9'):
		// numeric token already decoded by the tokenizer, pass it through untouched
		d, err := decimal.NewFromString(string(b))
		if err != nil || d.Exponent() > MaxExponent || d.Exponent() < -MaxExponent {
			return &Error{Value: string(b), Reason: ReasonFormat}
		}
		*a = NewAmount(d)
		return nil

	case c == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return &Error{Value: string(b), Reason: ReasonToken}
		}
		d, err := Parse(s)
		if err != nil {
			return err
		}
		*a = NewAmount(d)
		return nil
	}

	return &Error{Value: string(b), Reason: ReasonToken}
}

// MarshalJSON emits the amount as a bare JSON number, null when unset
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.set {
		return []byte("null"), nil
	}
	return []byte(a.Decimal.String()), nil
}
