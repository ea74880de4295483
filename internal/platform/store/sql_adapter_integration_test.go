//go:build integration_pg

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openIT(t *testing.T) (*Store, context.Context) {
	t.Helper()
	dsn := testkit.Postgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	s, err := Open(ctx, Config{AppName: "store-it", PG: PGConfig{Enabled: true, URL: dsn, MaxConns: 2, LogSQL: true}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s, ctx
}

func TestSQLAdapter_Integration(t *testing.T) {
	s, ctx := openIT(t)
	db := s.PG

	_, err := db.Exec(ctx, `CREATE TABLE it_items (id int PRIMARY KEY, price numeric NOT NULL)`)
	require.NoError(t, err)

	require.NoError(t, db.Tx(ctx, func(q RowQuerier) error {
		_, err := q.Exec(ctx, `INSERT INTO it_items VALUES (1, 10.50), (2, 0.99)`)
		return err
	}))

	rollback := errors.New("rollback")
	err = db.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, `INSERT INTO it_items VALUES (3, 1)`); err != nil {
			return err
		}
		return rollback
	})
	require.ErrorIs(t, err, rollback)

	n, err := Scalar[int](ctx, db, `SELECT count(*) FROM it_items`)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	prices, err := Many(ctx, db, func(r Row) (string, error) {
		var p string
		return p, r.Scan(&p)
	}, `SELECT price::text FROM it_items ORDER BY id`)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.50", "0.99"}, prices)

	require.NoError(t, ExecOne(ctx, db, `UPDATE it_items SET price = 2 WHERE id = $1`, 2))
	assert.ErrorIs(t, ExecOne(ctx, db, `UPDATE it_items SET price = 2 WHERE id = $1`, 99), perr.ErrNotFound)

	_, err = Scalar[int](ctx, db, `SELECT id FROM it_items WHERE id = 42`)
	assert.True(t, IsNoRows(err))

	_, err = db.Exec(ctx, `INSERT INTO it_items VALUES (1, 1)`)
	assert.True(t, perr.IsCode(perr.FromPostgres(err, "insert"), perr.ErrorCodeDuplicateKey))

	require.NoError(t, s.Guard(ctx))
}

func TestSQLAdapter_TxPanicRollsBack_Integration(t *testing.T) {
	s, ctx := openIT(t)
	db := s.PG

	_, err := db.Exec(ctx, `CREATE TABLE it_panic (id int PRIMARY KEY)`)
	require.NoError(t, err)

	assert.Panics(t, func() {
		_ = db.Tx(ctx, func(q RowQuerier) error {
			_, _ = q.Exec(ctx, `INSERT INTO it_panic VALUES (1)`)
			panic("boom")
		})
	})

	n, err := Scalar[int](ctx, db, `SELECT count(*) FROM it_panic`)
	require.NoError(t, err)
	assert.Zero(t, n)
}
