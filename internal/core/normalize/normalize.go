// Package normalize folds free text typed by shoppers and admins into stable forms
// Fold is used for case and accent insensitive catalog search, Slug for URL friendly names
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// chains are not safe for concurrent use, keep a pool of fresh ones
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,                          // split accents off their base letters
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // drop the split accents
			runes.Remove(runes.In(unicode.Cf)), // zero widths, BOM
			width.Fold,                         // fullwidth to ASCII
			norm.NFC,
		)
	},
}

// Fold returns s case folded, accent stripped and with whitespace runs collapsed
// "  Café  com LEITE " -> "cafe com leite"
func Fold(s string) string {
	s = Sanitize(s)
	if s == "" {
		return ""
	}

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(out), " ")
}

// Slug returns a lowercase ascii-ish identifier: letters and digits kept, everything else joined by single dashes
// "Eletrônicos & Games" -> "eletronicos-games"
func Slug(s string) string {
	folded := Fold(s)

	var b strings.Builder
	b.Grow(len(folded))
	dash := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// Sanitize drops invalid UTF-8, NUL, DEL and the C0/C1 control ranges except tab and line breaks
func Sanitize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n', r == '\r', r == '\t':
			return r
		case r < 0x20, r == 0x7f, r >= 0x80 && r <= 0x9f:
			return -1
		}
		return r
	}, s)
}
