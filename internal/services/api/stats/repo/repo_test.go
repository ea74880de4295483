package repo

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"storefront/internal/platform/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	for i, v := range r.data[r.i-1] {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }

type fakeCH struct {
	sql  string
	args []any
	rows [][]any
}

func (f *fakeCH) Insert(context.Context, string, [][]any) error { return nil }
func (f *fakeCH) Exec(context.Context, string, ...any) error    { return nil }
func (f *fakeCH) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.sql, f.args = sql, args
	return &fakeRows{data: f.rows}, nil
}
func (f *fakeCH) Close() error { return nil }

var window = Window{
	From:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	To:       time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
	Currency: "BRL",
	Limit:    5,
}

func TestTopProducts(t *testing.T) {
	t.Parallel()
	ch := &fakeCH{rows: [][]any{
		{"p1", "Mug", "BRL", uint64(3), uint64(2), "59.7000"},
		{"p2", "Tea", "BRL", uint64(1), uint64(1), "12.5000"},
	}}

	out, err := NewCH(ch).TopProducts(context.Background(), window)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Mug", out[0].Name)
	assert.True(t, out[0].Revenue.Equal(decimal.RequireFromString("59.7")))

	assert.Contains(t, ch.sql, Table+" FINAL")
	assert.Equal(t, []any{window.From, window.To, "BRL", "BRL", uint64(5)}, ch.args)
}

func TestTopCategories_ArrayJoin(t *testing.T) {
	t.Parallel()
	ch := &fakeCH{rows: [][]any{{"Kitchen", "BRL", uint64(4), uint64(2), "80"}}}

	out, err := NewCH(ch).TopCategories(context.Background(), window)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Kitchen", out[0].Category)
	assert.True(t, strings.Contains(ch.sql, "ARRAY JOIN category_names"))
}

func TestRevenue_BadSum(t *testing.T) {
	t.Parallel()
	ch := &fakeCH{rows: [][]any{{"2026-10-01", "BRL", uint64(1), "nan"}}}

	_, err := NewCH(ch).Revenue(context.Background(), window)
	require.Error(t, err)
	assert.Len(t, ch.args, 4)
}

func TestNewCH_PanicsOnNil(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, "stats.Repo requires a non nil Clickhouse", func() { NewCH(nil) })
}
