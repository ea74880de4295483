// Package repo provides postgres access for orders
package repo

import (
	"context"
	"time"

	"storefront/internal/modkit/repokit"
	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/store"

	"github.com/shopspring/decimal"
)

// Repo defines the repository contract for orders
type Repo interface {
	PricesForUpdate(ctx context.Context, productIDs []string) ([]RowPrice, error)
	Insert(ctx context.Context, o RowOrder, items []RowItem) error
	ByID(ctx context.Context, id string, lock bool) (RowOrder, error)
	Items(ctx context.Context, orderIDs []string) (map[string][]RowItem, error)
	List(ctx context.Context, clientID string, limit, offset int) ([]RowOrder, error)
	Count(ctx context.Context, clientID string) (int, error)
	Transition(ctx context.Context, id, from, to string, paidAt *time.Time) error
	ExpireWaiting(ctx context.Context, cutoff time.Time, limit int) ([]string, error)
	SaleLines(ctx context.Context, orderID string) ([]RowSaleLine, error)
}

// RowPrice is the sellable state of a product at order time
type RowPrice struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Currency string
}

// RowOrder is an orders row
type RowOrder struct {
	ID       string
	ClientID string
	Status   string
	Total    decimal.Decimal
	Currency string
	Moment   time.Time
	PaidAt   *time.Time
}

// RowItem is an order_items row with the product name joined in
type RowItem struct {
	OrderID   string
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// RowSaleLine is an item of a paid order with its catalog context
type RowSaleLine struct {
	RowItem
	CategoryNames []string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func dec(s, what string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, perr.Wrapf(err, perr.ErrorCodeDB, "unreadable %s %q", what, s)
	}
	return d, nil
}

func (r *queries) PricesForUpdate(ctx context.Context, productIDs []string) ([]RowPrice, error) {
	return store.Many(ctx, r.q, func(row store.Row) (RowPrice, error) {
		var (
			p   RowPrice
			raw string
		)
		if err := row.Scan(&p.ID, &p.Name, &raw, &p.Currency); err != nil {
			return p, err
		}
		var err error
		p.Price, err = dec(raw, "price")
		return p, err
	}, `
select id::text, name, price::text, currency from products
where id::text = any($1)
order by id
for share
`, productIDs)
}

func (r *queries) Insert(ctx context.Context, o RowOrder, items []RowItem) error {
	if _, err := r.q.Exec(ctx, `
insert into orders (id, client_id, status, total, currency, moment)
values ($1, $2, $3, $4::numeric, $5, $6)
`, o.ID, o.ClientID, o.Status, o.Total.String(), o.Currency, o.Moment); err != nil {
		return perr.FromPostgres(err, "insert order")
	}
	for _, it := range items {
		if _, err := r.q.Exec(ctx, `
insert into order_items (order_id, product_id, quantity, unit_price)
values ($1, $2, $3, $4::numeric)
`, o.ID, it.ProductID, it.Quantity, it.UnitPrice.String()); err != nil {
			return perr.FromPostgres(err, "insert order item")
		}
	}
	return nil
}

const selectOrder = `
select id::text, client_id::text, status, total::text, currency, moment, paid_at
from orders
`

func scanOrder(row store.Row) (RowOrder, error) {
	var (
		o     RowOrder
		total string
	)
	if err := row.Scan(&o.ID, &o.ClientID, &o.Status, &total, &o.Currency, &o.Moment, &o.PaidAt); err != nil {
		return o, err
	}
	var err error
	o.Total, err = dec(total, "order total")
	return o, err
}

func (r *queries) ByID(ctx context.Context, id string, lock bool) (RowOrder, error) {
	sql := selectOrder + `where id = $1`
	if lock {
		sql += ` for update`
	}
	o, err := store.One(ctx, r.q, scanOrder, sql, id)
	return o, store.NotFound(err, "order")
}

func (r *queries) Items(ctx context.Context, orderIDs []string) (map[string][]RowItem, error) {
	out := make(map[string][]RowItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}
	items, err := store.Many(ctx, r.q, scanItem, `
select i.order_id::text, i.product_id::text, p.name, i.quantity, i.unit_price::text
from order_items i join products p on p.id = i.product_id
where i.order_id::text = any($1)
order by p.name_folded, i.product_id
`, orderIDs)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, nil
}

func scanItem(row store.Row) (RowItem, error) {
	var (
		it   RowItem
		unit string
	)
	if err := row.Scan(&it.OrderID, &it.ProductID, &it.Name, &it.Quantity, &unit); err != nil {
		return it, err
	}
	var err error
	it.UnitPrice, err = dec(unit, "unit price")
	return it, err
}

func (r *queries) List(ctx context.Context, clientID string, limit, offset int) ([]RowOrder, error) {
	return store.Many(ctx, r.q, scanOrder, selectOrder+`
where ($1 = '' or client_id::text = $1)
order by moment desc, id
limit $2 offset $3
`, clientID, limit, offset)
}

func (r *queries) Count(ctx context.Context, clientID string) (int, error) {
	return store.Scalar[int](ctx, r.q, `select count(*)::int from orders where ($1 = '' or client_id::text = $1)`, clientID)
}

// Transition moves an order from one status to another; a row in any other status is not found
func (r *queries) Transition(ctx context.Context, id, from, to string, paidAt *time.Time) error {
	err := store.ExecOne(ctx, r.q, `
update orders set status = $3, paid_at = coalesce($4, paid_at), updated_at = now()
where id = $1 and status = $2
`, id, from, to, paidAt)
	return store.NotFound(err, "order")
}

func (r *queries) ExpireWaiting(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	return store.Many(ctx, r.q, func(row store.Row) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	}, `
update orders set status = 'CANCELED', updated_at = now()
where id in (
	select id from orders
	where status = 'WAITING_PAYMENT' and moment < $1
	order by moment
	limit $2
	for update skip locked
)
returning id::text
`, cutoff, limit)
}

func (r *queries) SaleLines(ctx context.Context, orderID string) ([]RowSaleLine, error) {
	return store.Many(ctx, r.q, func(row store.Row) (RowSaleLine, error) {
		var (
			l    RowSaleLine
			unit string
		)
		if err := row.Scan(&l.OrderID, &l.ProductID, &l.Name, &l.Quantity, &unit, &l.CategoryNames); err != nil {
			return l, err
		}
		var err error
		l.UnitPrice, err = dec(unit, "unit price")
		return l, err
	}, `
select i.order_id::text, i.product_id::text, p.name, i.quantity, i.unit_price::text,
coalesce((
	select array_agg(c.name order by c.name_folded)
	from product_categories pc join categories c on c.id = pc.category_id
	where pc.product_id = i.product_id
), '{}'::text[])
from order_items i join products p on p.id = i.product_id
where i.order_id = $1
order by i.product_id
`, orderID)
}
