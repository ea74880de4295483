// Package service contains stats workflows
package service

import (
	"context"
	"time"

	"storefront/internal/core/flexdate"
	"storefront/internal/core/price"
	perr "storefront/internal/platform/errors"
	"storefront/internal/services/api/stats/domain"
	"storefront/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo repo.Repo
}

// New constructs a stats service; a nil repo means analytics are disabled and every query is 503
func New(r repo.Repo) *Svc {
	return &Svc{Repo: r}
}

// ErrDisabled is returned when no clickhouse is configured
var ErrDisabled = perr.Unavailablef("sales analytics are disabled")

// TopProducts returns best selling products in the window
func (s *Svc) TopProducts(ctx context.Context, in domain.TopInput) ([]domain.ProductSales, error) {
	w, err := s.window(in.Range, in.Currency, in.Limit)
	if err != nil {
		return nil, err
	}
	rows, err := s.Repo.TopProducts(ctx, w)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProductSales, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ProductSales{
			ProductID: r.ProductID,
			Name:      r.Name,
			Currency:  r.Currency,
			Quantity:  r.Quantity,
			Orders:    r.Orders,
			Revenue:   price.NewAmount(r.Revenue),
		})
	}
	return out, nil
}

// TopCategories returns best selling categories in the window
func (s *Svc) TopCategories(ctx context.Context, in domain.TopInput) ([]domain.CategorySales, error) {
	w, err := s.window(in.Range, in.Currency, in.Limit)
	if err != nil {
		return nil, err
	}
	rows, err := s.Repo.TopCategories(ctx, w)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CategorySales, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.CategorySales{
			Category: r.Category,
			Currency: r.Currency,
			Quantity: r.Quantity,
			Orders:   r.Orders,
			Revenue:  price.NewAmount(r.Revenue),
		})
	}
	return out, nil
}

// Revenue returns paid revenue per day in the window
func (s *Svc) Revenue(ctx context.Context, in domain.RevenueInput) ([]domain.DailyRevenue, error) {
	w, err := s.window(in.Range, in.Currency, 0)
	if err != nil {
		return nil, err
	}
	rows, err := s.Repo.Revenue(ctx, w)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DailyRevenue, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.DailyRevenue{
			Day:      r.Day,
			Currency: r.Currency,
			Orders:   r.Orders,
			Revenue:  price.NewAmount(r.Revenue),
		})
	}
	return out, nil
}

func (s *Svc) window(tr domain.TimeRange, currency string, limit int) (repo.Window, error) {
	if s.Repo == nil {
		return repo.Window{}, ErrDisabled
	}
	start, err := time.Parse(flexdate.Layout, tr.Start)
	if err != nil {
		return repo.Window{}, perr.WithField(perr.InvalidArgf("start must be YYYY-MM-DD"), "range.start")
	}
	end, err := time.Parse(flexdate.Layout, tr.End)
	if err != nil {
		return repo.Window{}, perr.WithField(perr.InvalidArgf("end must be YYYY-MM-DD"), "range.end")
	}
	if end.Before(start) {
		return repo.Window{}, perr.WithField(perr.InvalidArgf("end is before start"), "range.end")
	}
	if end.Sub(start) >= domain.MaxWindowDays*24*time.Hour {
		return repo.Window{}, perr.WithField(perr.InvalidArgf("window is longer than %d days", domain.MaxWindowDays), "range")
	}
	if limit <= 0 {
		limit = domain.DefaultLimit
	}
	return repo.Window{From: start, To: end.AddDate(0, 0, 1), Currency: currency, Limit: limit}, nil
}
