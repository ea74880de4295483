package price

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pricedItem struct {
	Name  string `json:"name"`
	Price Amount `json:"price"`
}

func TestAmount_Unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "number passthrough", body: `{"price": 1234.5}`, want: "1234.5"},
		{name: "negative number", body: `{"price": -3}`, want: "-3"},
		{name: "exponent number", body: `{"price": 1.5e2}`, want: "150"},
		{name: "largest exponent", body: `{"price": 1e64}`, want: "1e64"},
		{name: "brazilian string", body: `{"price": "R$ 1.234,56"}`, want: "1234.56"},
		{name: "us string", body: `{"price": "1,234.56"}`, want: "1234.56"},
		{name: "grouping only string", body: `{"price": "1.234"}`, want: "1234"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var it pricedItem
			require.NoError(t, json.Unmarshal([]byte(tc.body), &it))
			require.True(t, it.Price.IsSet())
			assert.Truef(t, it.Price.Equal(decimal.RequireFromString(tc.want)), "got %s want %s", it.Price, tc.want)
		})
	}
}

func TestAmount_NullAndAbsentAreUnset(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{"price": null}`, `{"name": "x"}`} {
		var it pricedItem
		require.NoError(t, json.Unmarshal([]byte(body), &it))
		assert.False(t, it.Price.IsSet(), body)
		assert.True(t, it.Price.IsZero(), body)
	}
}

func TestAmount_RejectsOtherTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		body   string
		reason string
	}{
		{body: `{"price": true}`, reason: ReasonToken},
		{body: `{"price": {"amount": 1}}`, reason: ReasonToken},
		{body: `{"price": [1, 2]}`, reason: ReasonToken},
		{body: `{"price": ""}`, reason: ReasonEmpty},
		{body: `{"price": "abc"}`, reason: ReasonFormat},
		{body: `{"price": "-"}`, reason: ReasonFormat},
		{body: `{"price": 1e200000000}`, reason: ReasonFormat},
		{body: `{"price": 1e-65}`, reason: ReasonFormat},
	}

	for _, tc := range tests {
		var it pricedItem
		err := json.Unmarshal([]byte(tc.body), &it)
		require.Error(t, err, tc.body)

		var pe *Error
		require.True(t, errors.As(err, &pe), "body %s: got %T", tc.body, err)
		assert.Equal(t, tc.reason, pe.Reason, tc.body)

		field, _, reason := pe.InvalidFormat()
		assert.Equal(t, "price", field)
		assert.Equal(t, tc.reason, reason)
	}
}

func TestAmount_Marshal(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(pricedItem{Name: "mug", Price: NewAmount(decimal.RequireFromString("19.90"))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"mug","price":19.9}`, string(out))

	out, err = json.Marshal(pricedItem{Name: "free"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"free","price":null}`, string(out))
}
