// Package password holds the account password policy and bcrypt hashing
package password

import (
	"errors"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Bounds in bytes; bcrypt ignores everything past 72
const (
	MinLen = 8
	MaxLen = 72
)

// Violation names one unmet rule
type Violation string

// Policy rules
const (
	TooShort      Violation = "at least 8 characters"
	TooLong       Violation = "at most 72 bytes"
	MissingUpper  Violation = "an uppercase letter"
	MissingLower  Violation = "a lowercase letter"
	MissingDigit  Violation = "a digit"
	MissingSymbol Violation = "a symbol"
	HasSpace      Violation = "no whitespace"
)

// Cost is the bcrypt work factor; tests lower it
var Cost = bcrypt.DefaultCost

// ErrMismatch is returned by Compare for a wrong password
var ErrMismatch = errors.New("password mismatch")

// Check returns every rule pw breaks, nil when it is strong enough
func Check(pw string) []Violation {
	var out []Violation
	if len(pw) < MinLen {
		out = append(out, TooShort)
	}
	if len(pw) > MaxLen {
		out = append(out, TooLong)
	}

	var upper, lower, digit, symbol, space bool
	for _, r := range pw {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	if !upper {
		out = append(out, MissingUpper)
	}
	if !lower {
		out = append(out, MissingLower)
	}
	if !digit {
		out = append(out, MissingDigit)
	}
	if !symbol {
		out = append(out, MissingSymbol)
	}
	if space {
		out = append(out, HasSpace)
	}
	return out
}

// Strong reports whether pw passes every rule
func Strong(pw string) bool { return len(Check(pw)) == 0 }

// Describe renders violations as a single sentence fragment, "an uppercase letter, a digit"
func Describe(v []Violation) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = string(x)
	}
	return strings.Join(parts, ", ")
}

// Hash returns the bcrypt hash of pw
func Hash(pw string) (string, error) {
	if len(pw) > MaxLen {
		return "", bcrypt.ErrPasswordTooLong
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// decoy is hashed once at Cost on first use
var decoy = sync.OnceValue(func() string {
	h, err := bcrypt.GenerateFromPassword([]byte("decoy-password"), Cost)
	if err != nil {
		panic(err)
	}
	return string(h)
})

// DecoyHash is a fixed valid hash to compare against when there is no account
// the compare takes as long as one against a real hash
func DecoyHash() string { return decoy() }

// Compare checks pw against a hash produced by Hash
func Compare(hash, pw string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
