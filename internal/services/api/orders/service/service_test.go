package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/modkit/httpkit"
	perr "storefront/internal/platform/errors"
	"storefront/internal/services/api/orders/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner    = httpkit.Principal{UserID: client, Roles: []string{"CLIENT"}}
	stranger = httpkit.Principal{UserID: other, Roles: []string{"CLIENT"}}
	admin    = httpkit.Principal{UserID: "root", Roles: []string{"ADMIN"}}
)

func place(t *testing.T, f *fixture, items ...domain.ItemInput) domain.Order {
	t.Helper()
	o, err := f.svc.Place(context.Background(), owner, domain.PlaceInput{Items: items})
	require.NoError(t, err)
	return o
}

func TestPlace_TotalsAndMerging(t *testing.T) {
	t.Parallel()
	f := newFixture(Config{})

	o := place(t, f,
		domain.ItemInput{ProductID: mugID, Quantity: 2},
		domain.ItemInput{ProductID: teaID, Quantity: 3},
		domain.ItemInput{ProductID: mugID, Quantity: 1},
	)
	assert.Equal(t, domain.StatusWaitingPayment, o.Status)
	assert.Equal(t, "BRL", o.Currency)
	assert.True(t, o.Total.Equal(decimal.RequireFromString("60.00")), o.Total.String())
	require.Len(t, o.Items, 2)
	assert.Equal(t, 3, o.Items[0].Quantity)
	assert.Equal(t, "59.7", o.Items[0].Subtotal.String())
	assert.Equal(t, "0.3", o.Items[1].Subtotal.String())
	assert.Equal(t, client, f.mem.orders[o.ID].ClientID)
}

func TestPlace_Rejects(t *testing.T) {
	t.Parallel()
	f := newFixture(Config{})
	ctx := context.Background()

	tests := []struct {
		name   string
		caller httpkit.Principal
		items  []domain.ItemInput
		code   perr.ErrorCode
	}{
		{name: "anonymous", items: []domain.ItemInput{{ProductID: mugID, Quantity: 1}}, code: perr.ErrorCodeUnauthorized},
		{name: "empty", caller: owner, code: perr.ErrorCodeInvalidArgument},
		{name: "unknown product", caller: owner, items: []domain.ItemInput{{ProductID: "44444444-4444-4444-8444-444444444444", Quantity: 1}}, code: perr.ErrorCodeInvalidArgument},
		{name: "bad id", caller: owner, items: []domain.ItemInput{{ProductID: "nope", Quantity: 1}}, code: perr.ErrorCodeInvalidArgument},
		{name: "zero quantity", caller: owner, items: []domain.ItemInput{{ProductID: mugID}}, code: perr.ErrorCodeInvalidArgument},
		{name: "mixed currency", caller: owner, items: []domain.ItemInput{{ProductID: mugID, Quantity: 1}, {ProductID: usdID, Quantity: 1}}, code: perr.ErrorCodeInvalidArgument},
	}
	for _, tc := range tests {
		_, err := f.svc.Place(ctx, tc.caller, domain.PlaceInput{Items: tc.items})
		assert.True(t, perr.IsCode(err, tc.code), "%s: %v", tc.name, err)
	}
	assert.Empty(t, f.mem.orders)
}

func TestPlace_TotalCap(t *testing.T) {
	t.Parallel()
	f := newFixture(Config{MaxTotal: decimal.RequireFromString("50")})

	o := place(t, f, domain.ItemInput{ProductID: mugID, Quantity: 2})
	assert.Equal(t, "39.8", o.Total.String())

	_, err := f.svc.Place(context.Background(), owner, domain.PlaceInput{Items: []domain.ItemInput{{ProductID: mugID, Quantity: 3}}})
	require.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument), "%v", err)
	assert.Equal(t, "order total 59.70 BRL exceeds the limit of 50.00", err.Error())
	assert.Len(t, f.mem.orders, 1)
}

func TestPay(t *testing.T) {
	t.Parallel()
	f := newFixture(Config{})
	ctx := context.Background()
	o := place(t, f, domain.ItemInput{ProductID: mugID, Quantity: 2})

	_, err := f.svc.Pay(ctx, stranger, o.ID)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeForbidden))
	_, err = f.svc.Pay(ctx, admin, o.ID)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeForbidden))

	f.clock.advance(time.Hour)
	paid, err := f.svc.Pay(ctx, owner, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, f.clock.now(), *paid.PaidAt)

	require.Len(t, f.sink.lines, 1)
	line := f.sink.lines[0]
	assert.Equal(t, o.ID, line.OrderID)
	assert.Equal(t, client, line.ClientID)
	assert.Equal(t, "39.8", line.LineTotal.String())
	assert.Equal(t, []string{"Kitchen"}, line.CategoryNames)
	assert.Equal(t, *paid.PaidAt, line.PaidAt)

	_, err = f.svc.Pay(ctx, owner, o.ID)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeConflict))
	assert.Len(t, f.sink.lines, 1)
}

func TestPay_SinkFailureKeepsPayment(t *testing.T) {
	t.Parallel()
	f := newFixture(Config{})
	f.sink.err = errors.New("clickhouse down")
	o := place(t, f, domain.ItemInput{ProductID: teaID, Quantity: 1})

	paid, err := f.svc.Pay(context.Background(), owner, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, paid.Status)
	assert.Equal(t, string(domain.StatusPaid), f.mem.orders[o.ID].Status)
}

func TestCancelAndFulfilment(t *testing.T) {
	t.Parallel()
	f := newFixture(Config{})
	ctx := context.Background()

	a := place(t, f, domain.ItemInput{ProductID: mugID, Quantity: 1})
	_, err := f.svc.Cancel(ctx, stranger, a.ID)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeForbidden))
	c, err := f.svc.Cancel(ctx, admin, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, c.Status)
	_, err = f.svc.Pay(ctx, owner, a.ID)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeConflict))

	b := place(t, f, domain.ItemInput{ProductID: mugID, Quantity: 1})
	_, err = f.svc.SetStatus(ctx, b.ID, domain.StatusShipped)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeConflict), "cannot ship before payment")
	_, err = f.svc.Pay(ctx, owner, b.ID)
	require.NoError(t, err)
	_, err = f.svc.Cancel(ctx, owner, b.ID)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeConflict), "paid orders cannot be canceled")
	_, err = f.svc.SetStatus(ctx, b.ID, domain.StatusDelivered)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeConflict), "must ship first")

	s, err := f.svc.SetStatus(ctx, b.ID, domain.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, s.Status)
	d, err := f.svc.SetStatus(ctx, b.ID, domain.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, d.Status)

	_, err = f.svc.SetStatus(ctx, b.ID, domain.StatusPaid)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestListAndGet(t *testing.T) {
	t.Parallel()
	f := newFixture(Config{})
	ctx := context.Background()

	first := place(t, f, domain.ItemInput{ProductID: mugID, Quantity: 1})
	f.clock.advance(time.Minute)
	second := place(t, f, domain.ItemInput{ProductID: teaID, Quantity: 1})
	_, err := f.svc.Place(ctx, stranger, domain.PlaceInput{Items: []domain.ItemInput{{ProductID: teaID, Quantity: 4}}})
	require.NoError(t, err)

	mine, err := f.svc.List(ctx, owner, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, mine.Total)
	require.Len(t, mine.Items, 2)
	assert.Equal(t, second.ID, mine.Items[0].ID, "newest first")

	all, err := f.svc.List(ctx, admin, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	_, err = f.svc.Get(ctx, stranger, first.ID)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeForbidden))
	got, err := f.svc.Get(ctx, admin, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Total.String(), got.Total.String())
}

func TestExpireBefore_Batches(t *testing.T) {
	t.Parallel()
	f := newFixture(Config{ExpireBatch: 2})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		place(t, f, domain.ItemInput{ProductID: mugID, Quantity: 1})
	}
	paid := place(t, f, domain.ItemInput{ProductID: mugID, Quantity: 1})
	_, err := f.svc.Pay(ctx, owner, paid.ID)
	require.NoError(t, err)

	f.clock.advance(time.Hour)
	fresh := place(t, f, domain.ItemInput{ProductID: teaID, Quantity: 1})

	n, err := f.svc.ExpireBefore(ctx, f.clock.now().Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, string(domain.StatusPaid), f.mem.orders[paid.ID].Status)
	assert.Equal(t, string(domain.StatusWaitingPayment), f.mem.orders[fresh.ID].Status)
	assert.GreaterOrEqual(t, f.tx.Began(), 3)
}
