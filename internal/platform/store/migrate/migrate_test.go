package migrate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"storefront/internal/platform/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_OrdersAndValidates(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"m/0002_b.sql":         {Data: []byte("B")},
		"m/0001_a.sql":         {Data: []byte("A")},
		"m/README.md":          {Data: []byte("skip")},
		"m/0010_c.sql":         {Data: []byte("C")},
		"bad/nounderscore.sql": {Data: []byte("x")},
		"dup/0001_a.sql":       {Data: []byte("x")},
		"dup/0001_b.sql":       {Data: []byte("y")},
	}

	ms, err := Load(fsys, "m")
	require.NoError(t, err)
	require.Len(t, ms, 3)
	assert.Equal(t, []string{"0001", "0002", "0010"}, []string{ms[0].Version, ms[1].Version, ms[2].Version})
	assert.Equal(t, "a", ms[0].Name)
	assert.Equal(t, "A", ms[0].SQL)

	_, err = Load(fsys, "bad")
	assert.ErrorContains(t, err, "NNNN_name.sql")

	_, err = Load(fsys, "dup")
	assert.ErrorContains(t, err, "version 0001")
}

func TestEmbedded_Load(t *testing.T) {
	t.Parallel()

	ms, err := Load(postgresFS, "postgres")
	require.NoError(t, err)
	require.NotEmpty(t, ms)
	assert.Equal(t, "0001", ms[0].Version)
	for _, m := range ms {
		assert.Contains(t, m.SQL, "CREATE TABLE", m.Name)
	}

	ch, err := Load(clickhouseFS, "clickhouse")
	require.NoError(t, err)
	require.Len(t, ch, 1)
	assert.Contains(t, ch[0].SQL, "sales_lines")
}

func TestStatements(t *testing.T) {
	t.Parallel()

	got := statements("CREATE TABLE a (x Int8);\n\n ;CREATE TABLE b (y Int8)\n")
	assert.Equal(t, []string{"CREATE TABLE a (x Int8)", "CREATE TABLE b (y Int8)"}, got)
}

// fakeDB answers the bookkeeping queries of apply and records every statement
type fakeDB struct {
	done  map[string]bool
	execs []string
	fail  string
}

type fakeTag struct{}

func (fakeTag) String() string      { return "" }
func (fakeTag) RowsAffected() int64 { return 1 }

type countRow struct{ n int }

func (r countRow) Scan(dest ...any) error { *(dest[0].(*int)) = r.n; return nil }

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	if f.fail != "" && strings.Contains(sql, f.fail) {
		return nil, errors.New("syntax error")
	}
	f.execs = append(f.execs, sql)
	if strings.HasPrefix(sql, "INSERT INTO schema_migrations") {
		f.done[args[0].(string)] = true
	}
	return fakeTag{}, nil
}

func (f *fakeDB) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("not used")
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) store.Row {
	if f.done[args[0].(string)] {
		return countRow{n: 1}
	}
	return countRow{}
}

func (f *fakeDB) Tx(_ context.Context, fn func(store.RowQuerier) error) error { return fn(f) }

func TestApply_SkipsRecordedVersions(t *testing.T) {
	t.Parallel()

	db := &fakeDB{done: map[string]bool{"0001": true}}
	ms := []Migration{
		{Version: "0001", Name: "users", SQL: "CREATE TABLE users ()"},
		{Version: "0002", Name: "catalog", SQL: "CREATE TABLE products ()"},
	}

	applied, err := apply(context.Background(), db, ms)
	require.NoError(t, err)
	assert.Equal(t, []string{"0002"}, applied)
	assert.NotContains(t, db.execs, "CREATE TABLE users ()")
	assert.Contains(t, db.execs, "CREATE TABLE products ()")

	applied, err = apply(context.Background(), db, ms)
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestApply_StopsOnFailure(t *testing.T) {
	t.Parallel()

	db := &fakeDB{done: map[string]bool{}, fail: "orders"}
	ms := []Migration{
		{Version: "0001", Name: "users", SQL: "CREATE TABLE users ()"},
		{Version: "0002", Name: "orders", SQL: "CREATE TABLE orders ()"},
		{Version: "0003", Name: "later", SQL: "CREATE TABLE later ()"},
	}

	applied, err := apply(context.Background(), db, ms)
	require.ErrorContains(t, err, "migration 0002_orders")
	assert.Equal(t, []string{"0001"}, applied)
	assert.False(t, db.done["0003"])
}
