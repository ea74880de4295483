package service

import (
	"context"

	"storefront/internal/platform/store"
	"storefront/internal/services/api/orders/domain"

	"github.com/google/uuid"
)

// SalesTable is the clickhouse table fed by paid orders
const SalesTable = "sales_lines"

// NopSink drops sale lines, used when clickhouse is disabled
type NopSink struct{}

// Record implements domain.SalesSink
func (NopSink) Record(context.Context, []domain.SaleLine) error { return nil }

// CHSink appends sale lines to clickhouse in one batch per order
type CHSink struct{ ch store.Clickhouse }

// NewCHSink returns a sink writing to ch
func NewCHSink(ch store.Clickhouse) *CHSink {
	if ch == nil {
		panic("orders.CHSink requires a non nil Clickhouse")
	}
	return &CHSink{ch: ch}
}

// Record implements domain.SalesSink
func (s *CHSink) Record(ctx context.Context, lines []domain.SaleLine) error {
	rows := make([][]any, 0, len(lines))
	for _, l := range lines {
		cats := l.CategoryNames
		if cats == nil {
			cats = []string{}
		}
		rows = append(rows, []any{
			uuid.MustParse(l.OrderID),
			uuid.MustParse(l.ClientID),
			uuid.MustParse(l.ProductID),
			l.ProductName,
			cats,
			uint32(l.Quantity),
			l.UnitPrice,
			l.LineTotal,
			l.Currency,
			l.PaidAt.UTC(),
		})
	}
	return s.ch.Insert(ctx, SalesTable, rows)
}
