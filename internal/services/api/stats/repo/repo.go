// Package repo provides clickhouse access for sales stats
package repo

import (
	"context"
	"time"

	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/store"

	"github.com/shopspring/decimal"
)

// Table holds one row per paid order line
const Table = "sales_lines"

// Window selects lines with From <= paid_at < To
type Window struct {
	From     time.Time
	To       time.Time
	Currency string
	Limit    int
}

// Repo is the minimal read surface for stats
type Repo interface {
	TopProducts(ctx context.Context, w Window) ([]RowProduct, error)
	TopCategories(ctx context.Context, w Window) ([]RowCategory, error)
	Revenue(ctx context.Context, w Window) ([]RowDay, error)
}

// RowProduct is a per product aggregate
type RowProduct struct {
	ProductID string
	Name      string
	Currency  string
	Quantity  uint64
	Orders    uint64
	Revenue   decimal.Decimal
}

// RowCategory is a per category aggregate
type RowCategory struct {
	Category string
	Currency string
	Quantity uint64
	Orders   uint64
	Revenue  decimal.Decimal
}

// RowDay is a per day aggregate
type RowDay struct {
	Day      string
	Currency string
	Orders   uint64
	Revenue  decimal.Decimal
}

// NewCH returns a Repo reading from ch
func NewCH(ch store.Clickhouse) Repo {
	if ch == nil {
		panic("stats.Repo requires a non nil Clickhouse")
	}
	return &queries{ch: ch}
}

type queries struct{ ch store.Clickhouse }

// FINAL collapses lines written twice for the same order
const (
	topProductsSQL = `
SELECT toString(product_id), any(product_name), currency,
       sum(quantity), uniqExact(order_id), toString(sum(line_total))
FROM ` + Table + ` FINAL
WHERE paid_at >= ? AND paid_at < ? AND (? = '' OR currency = ?)
GROUP BY product_id, currency
ORDER BY sum(quantity) DESC, sum(line_total) DESC, product_id
LIMIT ?`

	topCategoriesSQL = `
SELECT category, currency,
       sum(quantity), uniqExact(order_id), toString(sum(line_total))
FROM ` + Table + ` FINAL
ARRAY JOIN category_names AS category
WHERE paid_at >= ? AND paid_at < ? AND (? = '' OR currency = ?)
GROUP BY category, currency
ORDER BY sum(quantity) DESC, sum(line_total) DESC, category
LIMIT ?`

	revenueSQL = `
SELECT toString(toDate(paid_at)) AS day, currency,
       uniqExact(order_id), toString(sum(line_total))
FROM ` + Table + ` FINAL
WHERE paid_at >= ? AND paid_at < ? AND (? = '' OR currency = ?)
GROUP BY day, currency
ORDER BY day, currency`
)

func (q *queries) TopProducts(ctx context.Context, w Window) ([]RowProduct, error) {
	rows, err := q.ch.Query(ctx, topProductsSQL, w.From.UTC(), w.To.UTC(), w.Currency, w.Currency, uint64(w.Limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RowProduct
	for rows.Next() {
		var (
			r   RowProduct
			rev string
		)
		if err := rows.Scan(&r.ProductID, &r.Name, &r.Currency, &r.Quantity, &r.Orders, &rev); err != nil {
			return nil, err
		}
		if r.Revenue, err = parseSum(rev); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (q *queries) TopCategories(ctx context.Context, w Window) ([]RowCategory, error) {
	rows, err := q.ch.Query(ctx, topCategoriesSQL, w.From.UTC(), w.To.UTC(), w.Currency, w.Currency, uint64(w.Limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RowCategory
	for rows.Next() {
		var (
			r   RowCategory
			rev string
		)
		if err := rows.Scan(&r.Category, &r.Currency, &r.Quantity, &r.Orders, &rev); err != nil {
			return nil, err
		}
		if r.Revenue, err = parseSum(rev); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (q *queries) Revenue(ctx context.Context, w Window) ([]RowDay, error) {
	rows, err := q.ch.Query(ctx, revenueSQL, w.From.UTC(), w.To.UTC(), w.Currency, w.Currency)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RowDay
	for rows.Next() {
		var (
			r   RowDay
			rev string
		)
		if err := rows.Scan(&r.Day, &r.Currency, &r.Orders, &rev); err != nil {
			return nil, err
		}
		if r.Revenue, err = parseSum(rev); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func parseSum(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, perr.Wrapf(err, perr.ErrorCodeDB, "bad revenue sum %q", s)
	}
	return d, nil
}
