package price

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain dot decimal", in: "1234.56", want: "1234.56"},
		{name: "comma decimal dot grouping", in: "1.234,56", want: "1234.56"},
		{name: "dot decimal comma grouping", in: "1,234.56", want: "1234.56"},
		{name: "dot as grouping only", in: "1.234", want: "1234"},
		{name: "comma as grouping only", in: "1,234", want: "1234"},
		{name: "currency symbol and padding", in: "  R$ 1.234,56 ", want: "1234.56"},
		{name: "negative comma decimal", in: "-123,45", want: "-123.45"},
		{name: "interior minus dropped", in: "12-34", want: "1234"},
		{name: "double leading minus", in: "--5", want: "-5"},
		{name: "trailing minus dropped", in: "5-", want: "5"},
		{name: "negative after symbol", in: "R$ -1.234,56", want: "-1234.56"},
		{name: "nbsp grouping", in: "1\u00a0234,56", want: "1234.56"},
		{name: "narrow nbsp grouping", in: "1\u202f234.56", want: "1234.56"},
		{name: "euro suffix", in: "99,90\u00a0€", want: "99.90"},
		{name: "usd prefix", in: "$10.00", want: "10"},
		{name: "many groups", in: "1.234.567,89", want: "1234567.89"},
		{name: "many groups us", in: "1,234,567.89", want: "1234567.89"},
		{name: "single kind repeated", in: "1,234,56", want: "1234.56"},
		{name: "one trailing digit is grouping", in: "1,5", want: "15"},
		{name: "rightmost without digits swaps to other", in: "1,23.", want: "1.23"},
		{name: "rightmost default when neither has two", in: "1.2,345", want: "12.345"},
		{name: "integer", in: "42", want: "42"},
		{name: "cents only", in: "R$ 0,50", want: "0.50"},
		{name: "spaces grouping", in: "1 000 000", want: "1000000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tc.in)
			require.NoError(t, err)
			want := decimal.RequireFromString(tc.want)
			assert.Truef(t, got.Equal(want), "Parse(%q) = %s, want %s", tc.in, got, want)
		})
	}
}

func TestParse_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		reason string
	}{
		{in: "", reason: ReasonEmpty},
		{in: "   ", reason: ReasonEmpty},
		{in: "\u00a0", reason: ReasonEmpty},
		{in: "-", reason: ReasonFormat},
		{in: "abc", reason: ReasonFormat},
		{in: "R$", reason: ReasonFormat},
		{in: ",", reason: ReasonFormat},
		{in: ".", reason: ReasonFormat},
		{in: ".,", reason: ReasonFormat},
		{in: ",.,.", reason: ReasonFormat},
		{in: "-,", reason: ReasonFormat},
	}

	for _, tc := range tests {
		_, err := Parse(tc.in)
		require.Errorf(t, err, "Parse(%q) should fail", tc.in)

		var pe *Error
		require.True(t, errors.As(err, &pe), "want *price.Error, got %T", err)
		assert.Equal(t, tc.reason, pe.Reason, "reason for %q", tc.in)
		assert.Equal(t, tc.in, pe.Value)
		assert.Contains(t, err.Error(), tc.reason)
	}
}

func TestParse_ReproducesFormattedValues(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	groupsFor := map[byte][]string{
		'.': {",", " ", "\u00a0", "'"},
		',': {".", " ", "\u00a0", "'"},
	}

	for i := 0; i < 500; i++ {
		cents := rng.Int63n(1_000_000_000_00)
		if rng.Intn(4) == 0 {
			cents = -cents
		}
		want := decimal.New(cents, -2)

		mark := byte('.')
		if rng.Intn(2) == 0 {
			mark = ','
		}
		seps := groupsFor[mark]
		raw := format(want, mark, seps[rng.Intn(len(seps))], rng)

		got, err := Parse(raw)
		require.NoErrorf(t, err, "Parse(%q)", raw)
		require.Truef(t, got.Equal(want), "Parse(%q) = %s, want %s", raw, got, want)
	}
}

// format renders d with the given decimal mark and grouping inserted at random points of the integer part
func format(d decimal.Decimal, mark byte, group string, rng *rand.Rand) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && rng.Intn(3) == 0 {
			b.WriteString(group)
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte(mark)
	b.WriteString(frac)
	return b.String()
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"1234.56", "1.234,56", "1,234.56", "1.234", "  R$ 1.234,50 ", "-123,45", "12-34", "0,05"}
	for _, in := range inputs {
		first, err := Parse(in)
		require.NoError(t, err)

		norm, err := Normalize(in)
		require.NoError(t, err)

		second, err := Parse(norm)
		require.NoError(t, err)
		assert.Truef(t, first.Equal(second), "Parse(Normalize(%q)) = %s, want %s", in, second, first)

		again, err := Normalize(norm)
		require.NoError(t, err)
		assert.Equal(t, norm, again)
	}
}

func TestParse_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				d, err := Parse("1.234,56")
				if err != nil || !d.Equal(decimal.RequireFromString("1234.56")) {
					t.Errorf("concurrent parse = %s, %v", d, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParse("") })
	assert.True(t, MustParse("10,00").Equal(decimal.NewFromInt(10)))
}
