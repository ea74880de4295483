// Package flexdate parses calendar dates typed in the handful of layouts our clients send
package flexdate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Failure reasons reported through *Error
const (
	ReasonEmpty       = "empty or invalid value"
	ReasonUnsupported = "unsupported date format"
)

// Layout is the canonical wire form
const Layout = "2006-01-02"

// layouts are tried in order, day first for the slash, dash and dot forms
var layouts = []string{
	Layout,
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Error reports an unparseable date
type Error struct {
	Value  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}

// InvalidFormat reports a generic "date" field; bind swaps in the JSON name of the field
func (e *Error) InvalidFormat() (field, value, reason string) {
	return "date", e.Value, e.Reason
}

// Parse reads raw with the first matching layout; the result is in UTC
func Parse(raw string) (time.Time, error) {
	t, err := parse(raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// parse keeps the offset written in raw, so the calendar day is the one the client typed
func parse(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, &Error{Value: raw, Reason: ReasonEmpty}
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &Error{Value: raw, Reason: ReasonUnsupported}
}

// Date is a calendar day that accepts any supported layout from JSON and emits Layout
type Date struct {
	time.Time
}

// On returns midnight UTC of t's calendar day in t's own location
func On(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String implements fmt.Stringer
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(Layout)
}

// UnmarshalJSON implements json.Unmarshaler; null leaves the zero value
func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &Error{Value: string(b), Reason: ReasonUnsupported}
	}
	t, err := parse(s)
	if err != nil {
		return err
	}
	*d = On(t)
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(Layout))
}
