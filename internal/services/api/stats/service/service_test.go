package service

import (
	"context"
	"testing"
	"time"

	perr "storefront/internal/platform/errors"
	"storefront/internal/services/api/stats/domain"
	"storefront/internal/services/api/stats/repo"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	got repo.Window
}

func (f *fakeRepo) TopProducts(_ context.Context, w repo.Window) ([]repo.RowProduct, error) {
	f.got = w
	return []repo.RowProduct{{ProductID: "p1", Name: "Mug", Currency: "BRL", Quantity: 3, Orders: 2, Revenue: decimal.RequireFromString("59.70")}}, nil
}

func (f *fakeRepo) TopCategories(_ context.Context, w repo.Window) ([]repo.RowCategory, error) {
	f.got = w
	return []repo.RowCategory{{Category: "Kitchen", Currency: "BRL", Quantity: 5, Orders: 3, Revenue: decimal.RequireFromString("100")}}, nil
}

func (f *fakeRepo) Revenue(_ context.Context, w repo.Window) ([]repo.RowDay, error) {
	f.got = w
	return []repo.RowDay{{Day: "2026-10-01", Currency: "BRL", Orders: 1, Revenue: decimal.RequireFromString("19.9")}}, nil
}

func rng(start, end string) domain.TimeRange { return domain.TimeRange{Start: start, End: end} }

func TestTopProducts_WindowIsInclusiveOfEndDay(t *testing.T) {
	t.Parallel()
	f := &fakeRepo{}
	out, err := New(f).TopProducts(context.Background(), domain.TopInput{Range: rng("2026-10-01", "2026-10-31"), Currency: "BRL"})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), f.got.From)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), f.got.To)
	assert.Equal(t, "BRL", f.got.Currency)
	assert.Equal(t, domain.DefaultLimit, f.got.Limit)

	require.Len(t, out, 1)
	assert.Equal(t, "Mug", out[0].Name)
	assert.True(t, out[0].Revenue.IsSet())
	assert.True(t, out[0].Revenue.Equal(decimal.RequireFromString("59.7")))
}

func TestTopCategories_KeepsLimit(t *testing.T) {
	t.Parallel()
	f := &fakeRepo{}
	out, err := New(f).TopCategories(context.Background(), domain.TopInput{Range: rng("2026-10-01", "2026-10-01"), Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, f.got.Limit)
	assert.Equal(t, 24*time.Hour, f.got.To.Sub(f.got.From))
	require.Len(t, out, 1)
	assert.Equal(t, uint64(5), out[0].Quantity)
}

func TestRevenue(t *testing.T) {
	t.Parallel()
	f := &fakeRepo{}
	out, err := New(f).Revenue(context.Background(), domain.RevenueInput{Range: rng("2026-10-01", "2026-10-02")})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2026-10-01", out[0].Day)
}

func TestWindow_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rng   domain.TimeRange
		field string
	}{
		{name: "end before start", rng: rng("2026-10-02", "2026-10-01"), field: "range.end"},
		{name: "too long", rng: rng("2025-01-01", "2026-10-01"), field: "range"},
		{name: "bad start", rng: rng("01/10/2026", "2026-10-01"), field: "range.start"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(&fakeRepo{}).TopProducts(context.Background(), domain.TopInput{Range: tc.rng})
			require.Error(t, err)
			assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
			e, _ := perr.As(err)
			assert.Equal(t, tc.field, e.Field())
		})
	}
}

func TestDisabled(t *testing.T) {
	t.Parallel()
	s := New(nil)

	_, err := s.TopProducts(context.Background(), domain.TopInput{Range: rng("2026-10-01", "2026-10-01")})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))

	_, err = s.TopCategories(context.Background(), domain.TopInput{Range: rng("2026-10-01", "2026-10-01")})
	assert.Equal(t, 503, perr.HTTPStatus(err))

	_, err = s.Revenue(context.Background(), domain.RevenueInput{Range: rng("2026-10-01", "2026-10-01")})
	assert.ErrorIs(t, err, ErrDisabled)
}
