// Package repo provides postgres access for products
package repo

import (
	"context"
	"time"

	"storefront/internal/modkit/repokit"
	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/store"

	"github.com/shopspring/decimal"
)

// Repo defines the repository contract for products
type Repo interface {
	Insert(ctx context.Context, p RowProduct) error
	Update(ctx context.Context, p RowProduct) error
	Delete(ctx context.Context, id string) error
	SetCategories(ctx context.Context, productID string, categoryIDs []string) error
	ByID(ctx context.Context, id string) (RowProduct, error)
	List(ctx context.Context, f Filter) ([]RowProduct, error)
	Count(ctx context.Context, f Filter) (int, error)
	Categories(ctx context.Context, productIDs []string) (map[string][]RowCategory, error)
}

// Filter narrows List and Count; NameFolded is already folded
type Filter struct {
	NameFolded string
	Category   string
	Limit      int
	Offset     int
}

// RowProduct is a products row
type RowProduct struct {
	ID            string
	Name          string
	NameFolded    string
	Description   string
	Price         decimal.Decimal
	Currency      string
	ImgURL        *string
	AvailableFrom *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RowCategory is a category linked to a product
type RowCategory struct {
	ID   string
	Name string
	Slug string
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

// numeric columns travel as text so no decimal codec needs registering on the pool
const selectProduct = `
select p.id::text, p.name, p.name_folded, p.description, p.price::text, p.currency,
p.img_url, p.available_from, p.created_at, p.updated_at
from products p
`

const filterProduct = `
where ($1 = '' or strpos(p.name_folded, $1) > 0)
and ($2 = '' or exists (
	select 1 from product_categories pc join categories c on c.id = pc.category_id
	where pc.product_id = p.id and (c.id::text = $2 or c.slug = $2)))
`

func scanProduct(row store.Row) (RowProduct, error) {
	var (
		p     RowProduct
		price string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.NameFolded, &p.Description, &price, &p.Currency,
		&p.ImgURL, &p.AvailableFrom, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return p, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return p, perr.Wrapf(err, perr.ErrorCodeDB, "product %s has unreadable price %q", p.ID, price)
	}
	p.Price = d
	return p, nil
}

func (r *queries) Insert(ctx context.Context, p RowProduct) error {
	_, err := r.q.Exec(ctx, `
insert into products (id, name, name_folded, description, price, currency, img_url, available_from)
values ($1, $2, $3, $4, $5::numeric, $6, $7, $8)
`, p.ID, p.Name, p.NameFolded, p.Description, p.Price.String(), p.Currency, p.ImgURL, p.AvailableFrom)
	return perr.FromPostgresWithField(err, "insert product")
}

func (r *queries) Update(ctx context.Context, p RowProduct) error {
	err := store.ExecOne(ctx, r.q, `
update products set name = $2, name_folded = $3, description = $4, price = $5::numeric,
currency = $6, img_url = $7, available_from = $8, updated_at = now()
where id = $1
`, p.ID, p.Name, p.NameFolded, p.Description, p.Price.String(), p.Currency, p.ImgURL, p.AvailableFrom)
	if err != nil && !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return perr.FromPostgresWithField(err, "update product")
	}
	return store.NotFound(err, "product")
}

func (r *queries) Delete(ctx context.Context, id string) error {
	err := store.ExecOne(ctx, r.q, `delete from products where id = $1`, id)
	if perr.IsStillReferenced(err) {
		return perr.Wrap(err, perr.ErrorCodeConflict, "product is part of an order and cannot be deleted")
	}
	return store.NotFound(err, "product")
}

func (r *queries) SetCategories(ctx context.Context, productID string, categoryIDs []string) error {
	if _, err := r.q.Exec(ctx, `delete from product_categories where product_id = $1`, productID); err != nil {
		return perr.FromPostgres(err, "clear product categories")
	}
	_, err := r.q.Exec(ctx, `
insert into product_categories (product_id, category_id)
select $1, c::uuid from unnest($2::text[]) as c
on conflict do nothing
`, productID, categoryIDs)
	if perr.IsForeignKeyViolation(err) {
		return perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, "unknown category"), "categories")
	}
	return perr.FromPostgres(err, "set product categories")
}

func (r *queries) ByID(ctx context.Context, id string) (RowProduct, error) {
	p, err := store.One(ctx, r.q, scanProduct, selectProduct+`where p.id = $1`, id)
	return p, store.NotFound(err, "product")
}

func (r *queries) List(ctx context.Context, f Filter) ([]RowProduct, error) {
	return store.Many(ctx, r.q, scanProduct, selectProduct+filterProduct+`order by p.name_folded, p.id limit $3 offset $4`,
		f.NameFolded, f.Category, f.Limit, f.Offset)
}

func (r *queries) Count(ctx context.Context, f Filter) (int, error) {
	return store.Scalar[int](ctx, r.q, `select count(*)::int from products p `+filterProduct, f.NameFolded, f.Category)
}

func (r *queries) Categories(ctx context.Context, productIDs []string) (map[string][]RowCategory, error) {
	out := make(map[string][]RowCategory, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	type link struct {
		productID string
		RowCategory
	}
	links, err := store.Many(ctx, r.q, func(row store.Row) (link, error) {
		var l link
		err := row.Scan(&l.productID, &l.ID, &l.Name, &l.Slug)
		return l, err
	}, `
select pc.product_id::text, c.id::text, c.name, c.slug
from product_categories pc join categories c on c.id = pc.category_id
where pc.product_id::text = any($1)
order by c.name_folded
`, productIDs)
	if err != nil {
		return nil, err
	}
	for _, l := range links {
		out[l.productID] = append(out[l.productID], l.RowCategory)
	}
	return out, nil
}
