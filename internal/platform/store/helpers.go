package store

import (
	"context"
	"errors"

	perr "storefront/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// MaxTxAttempts bounds InTx retries on serialization failures and deadlocks
const MaxTxAttempts = 3

// IsNoRows reports whether err is the driver's empty result error
func IsNoRows(err error) bool { return errors.Is(err, pgx.ErrNoRows) }

// NotFound turns an empty result into a coded not found error naming what, other errors pass through
func NotFound(err error, what string) error {
	if IsNoRows(err) || errors.Is(err, perr.ErrNotFound) {
		return perr.NotFoundf("%s not found", what)
	}
	return err
}

// ExecOne runs a write and asserts exactly one row was affected, otherwise not found
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return perr.ErrNotFound
	}
	return nil
}

// Scalar queries the first row, first column into T
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (T, error) {
	var v T
	if err := q.QueryRow(ctx, sql, args...).Scan(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// One maps a single row into T with scan; an empty result is perr.ErrNotFound
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var zero T
	rs, err := q.Query(ctx, sql, args...)
	if err != nil {
		return zero, err
	}
	defer rs.Close()
	if !rs.Next() {
		if err := rs.Err(); err != nil {
			return zero, err
		}
		return zero, perr.ErrNotFound
	}
	item, err := scan(rs)
	if err != nil {
		return zero, err
	}
	return item, rs.Err()
}

// Many maps all rows into []T with scan
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rs, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var out []T
	for rs.Next() {
		item, err := scan(rs)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rs.Err()
}

// InTx runs fn in a transaction and retries it when postgres reports a retryable conflict
func InTx(ctx context.Context, db TxRunner, fn func(q RowQuerier) error) error {
	var err error
	for attempt := 1; attempt <= MaxTxAttempts; attempt++ {
		err = db.Tx(ctx, fn)
		if err == nil || !perr.IsRetryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}
