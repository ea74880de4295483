// Package storetest provides store fakes for service tests that bind in memory repos
package storetest

import (
	"context"
	"errors"
	"sync"

	"storefront/internal/platform/store"
)

// ErrNoQueries is returned when code under test reaches the fake's SQL surface
var ErrNoQueries = errors.New("storetest: unexpected query")

// Tx is a TxRunner that runs fn inline; repos are expected to come from a binder that ignores q
type Tx struct {
	mu    sync.Mutex
	began int

	// Fail, when set, is returned from every Tx before fn runs
	Fail error
}

// Began reports how many transactions were started
func (t *Tx) Began() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.began
}

// Tx runs fn with t as the queryer
func (t *Tx) Tx(_ context.Context, fn func(store.RowQuerier) error) error {
	t.mu.Lock()
	t.began++
	fail := t.Fail
	t.mu.Unlock()
	if fail != nil {
		return fail
	}
	return fn(t)
}

// Exec implements store.RowQuerier
func (t *Tx) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	return nil, ErrNoQueries
}

// Query implements store.RowQuerier
func (t *Tx) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, ErrNoQueries
}

// QueryRow implements store.RowQuerier
func (t *Tx) QueryRow(context.Context, string, ...any) store.Row { return errRow{} }

type errRow struct{}

func (errRow) Scan(...any) error { return ErrNoQueries }
