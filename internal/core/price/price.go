// Package price turns loosely formatted, human entered price strings into exact decimals
//
// Inputs may mix regional conventions ("1.234,56", "1,234.56"), carry currency symbols
// ("R$ 10,00"), grouping spaces or non-breaking spaces. The decimal separator is inferred
// per input with a two trailing digits rule, so "1.234" reads as one thousand two hundred
// thirty four, never as one point two three four
package price

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Failure reasons reported through *Error
const (
	ReasonEmpty  = "empty or invalid value"
	ReasonToken  = "invalid token for price"
	ReasonFormat = "invalid numeric format"
)

// Error is the single failure kind of this package
// Value holds the raw input as received, Reason one of the Reason* constants
type Error struct {
	Value  string
	Reason string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("invalid price %q: %s", e.Value, e.Reason)
}

// InvalidFormat reports the offending field, raw value and reason for transport error mapping
func (e *Error) InvalidFormat() (field, value, reason string) {
	return "price", e.Value, e.Reason
}

// Parse converts raw into an exact decimal or fails with *Error
func Parse(raw string) (decimal.Decimal, error) {
	norm, err := Normalize(raw)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(norm)
	if err != nil {
		return decimal.Zero, &Error{Value: raw, Reason: ReasonFormat}
	}
	return d, nil
}

// Normalize returns the plain decimal literal Parse would build for raw, e.g. "-1234.56"
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", &Error{Value: raw, Reason: ReasonEmpty}
	}

	cleaned := clean(s)
	norm := normalize(cleaned, detectSeparator(cleaned))
	if norm == "" || norm == "-" || !hasDigit(norm) {
		return "", &Error{Value: raw, Reason: ReasonFormat}
	}
	return norm, nil
}

// MustParse is Parse for literals in tests and seed data; it panics on failure
func MustParse(raw string) decimal.Decimal {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// clean drops non-breaking spaces and every rune that is not an ascii digit, '.', ',' or '-'
func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case isNBSP(r):
			continue
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isNBSP(r rune) bool {
	return r == '\u00a0' || r == '\u202f' || r == '\u2007'
}

// detectSeparator returns '.', ',' or 0 when the value has no fractional part
func detectSeparator(s string) byte {
	dot := strings.LastIndexByte(s, '.')
	comma := strings.LastIndexByte(s, ',')

	switch {
	case dot < 0 && comma < 0:
		return 0
	case comma < 0:
		if digitsAfter(s, dot) == 2 {
			return '.'
		}
		return 0
	case dot < 0:
		if digitsAfter(s, comma) == 2 {
			return ','
		}
		return 0
	}

	// both kinds present: the rightmost one is the candidate
	cand, candAt, other, otherAt := byte('.'), dot, byte(','), comma
	if comma > dot {
		cand, candAt, other, otherAt = ',', comma, '.', dot
	}
	if digitsAfter(s, candAt) == 2 {
		return cand
	}
	if digitsAfter(s, otherAt) == 2 {
		return other
	}
	return cand
}

// digitsAfter counts the ascii digits to the right of index i
func digitsAfter(s string, i int) int {
	n := 0
	for j := i + 1; j < len(s); j++ {
		if s[j] >= '0' && s[j] <= '9' {
			n++
		}
	}
	return n
}

// normalize rebuilds s as a plain decimal literal using '.' as the only separator
// the last occurrence of sep becomes the decimal point, other separators are grouping and dropped
// only a leading minus survives
func normalize(s string, sep byte) string {
	decAt := -1
	if sep != 0 {
		decAt = strings.LastIndexByte(s, sep)
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '-':
			if i == 0 {
				b.WriteByte('-')
			}
		case i == decAt:
			b.WriteByte('.')
		}
	}
	return b.String()
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}
