// Package service contains products workflows
package service

import (
	"context"
	"slices"
	"strings"

	"storefront/internal/core/flexdate"
	"storefront/internal/core/normalize"
	"storefront/internal/core/price"
	"storefront/internal/modkit/httpkit"
	"storefront/internal/modkit/repokit"
	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/logger"
	str "storefront/internal/platform/strings"
	ptime "storefront/internal/platform/time"
	"storefront/internal/services/api/products/domain"
	"storefront/internal/services/api/products/repo"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

// Service defines the service contract for products
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	newID  func() string
}

// New creates a new products service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("products.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("products.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, newID: uuid.NewString}
}

// List pages through the catalog
func (s *Svc) List(ctx context.Context, in domain.ListInput) (httpkit.Page[domain.Product], error) {
	f := repo.Filter{
		NameFolded: normalize.Fold(in.Name),
		Category:   strings.TrimSpace(in.Category),
		Limit:      in.Size,
		Offset:     max(in.Page-1, 0) * in.Size,
	}
	rows, err := s.Repo.List(ctx, f)
	if err != nil {
		return httpkit.Page[domain.Product]{}, err
	}
	total, err := s.Repo.Count(ctx, f)
	if err != nil {
		return httpkit.Page[domain.Product]{}, err
	}
	items, err := s.withCategories(ctx, s.Repo, rows)
	if err != nil {
		return httpkit.Page[domain.Product]{}, err
	}
	return httpkit.NewPage(items, in.Page, in.Size, total), nil
}

// Get returns one product with its categories
func (s *Svc) Get(ctx context.Context, id string) (domain.Product, error) {
	return s.load(ctx, s.Repo, id)
}

// Create adds a product and links its categories in one transaction
func (s *Svc) Create(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	row, cats, err := s.row(s.newID(), in)
	if err != nil {
		return domain.Product{}, err
	}
	var out domain.Product
	err = repokit.WithTxRepo(ctx, s.db, s.binder, func(r repo.Repo) error {
		if err := r.Insert(ctx, row); err != nil {
			return err
		}
		if err := r.SetCategories(ctx, row.ID, cats); err != nil {
			return err
		}
		var err error
		out, err = s.load(ctx, r, row.ID)
		return err
	})
	if err != nil {
		return domain.Product{}, err
	}
	logger.C(ctx).Info().Str("product_id", row.ID).Str("price", row.Price.String()).Str("currency", row.Currency).Msg("product created")
	return out, nil
}

// Update replaces a product and its category links
func (s *Svc) Update(ctx context.Context, id string, in domain.ProductInput) (domain.Product, error) {
	row, cats, err := s.row(id, in)
	if err != nil {
		return domain.Product{}, err
	}
	var out domain.Product
	err = repokit.WithTxRepo(ctx, s.db, s.binder, func(r repo.Repo) error {
		if err := r.Update(ctx, row); err != nil {
			return err
		}
		if err := r.SetCategories(ctx, row.ID, cats); err != nil {
			return err
		}
		var err error
		out, err = s.load(ctx, r, row.ID)
		return err
	})
	return out, err
}

// Delete removes a product that no order references
func (s *Svc) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *Svc) row(id string, in domain.ProductInput) (repo.RowProduct, []string, error) {
	if !in.Price.IsSet() || !in.Price.IsPositive() {
		return repo.RowProduct{}, nil, perr.WithField(perr.InvalidArgf("price must be greater than zero"), "price")
	}
	cur, err := currencyCode(in.Currency)
	if err != nil {
		return repo.RowProduct{}, nil, err
	}
	cats := slices.Clone(in.Categories)
	slices.Sort(cats)
	cats = slices.Compact(cats)
	if len(cats) == 0 {
		return repo.RowProduct{}, nil, perr.WithField(perr.InvalidArgf("at least one category is required"), "categories")
	}

	name := strings.Join(strings.Fields(in.Name), " ")
	return repo.RowProduct{
		ID:            id,
		Name:          name,
		NameFolded:    normalize.Fold(name),
		Description:   normalize.Sanitize(strings.TrimSpace(in.Description)),
		Price:         in.Price.Decimal,
		Currency:      cur,
		ImgURL:        str.Ptr(strings.TrimSpace(in.ImgURL)),
		AvailableFrom: ptime.Ptr(in.AvailableFrom.Time),
	}, cats, nil
}

// currencyCode defaults blank codes and canonicalizes known ISO 4217 ones
func currencyCode(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.DefaultCurrency, nil
	}
	u, err := currency.ParseISO(strings.ToUpper(raw))
	if err != nil {
		return "", perr.WithField(perr.InvalidArgf("unknown currency %q", raw), "currency")
	}
	return u.String(), nil
}

func (s *Svc) load(ctx context.Context, r repo.Repo, id string) (domain.Product, error) {
	row, err := r.ByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	out, err := s.withCategories(ctx, r, []repo.RowProduct{row})
	if err != nil {
		return domain.Product{}, err
	}
	return out[0], nil
}

func (s *Svc) withCategories(ctx context.Context, r repo.Repo, rows []repo.RowProduct) ([]domain.Product, error) {
	ids := make([]string, 0, len(rows))
	for _, p := range rows {
		ids = append(ids, p.ID)
	}
	links, err := r.Categories(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, p := range rows {
		out = append(out, toProduct(p, links[p.ID]))
	}
	return out, nil
}

func toProduct(r repo.RowProduct, cats []repo.RowCategory) domain.Product {
	p := domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       price.NewAmount(r.Price),
		Currency:    r.Currency,
		ImgURL:      str.Deref(r.ImgURL),
		Categories:  make([]domain.CategoryRef, 0, len(cats)),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.AvailableFrom != nil {
		d := flexdate.On(*r.AvailableFrom)
		p.AvailableFrom = &d
	}
	for _, c := range cats {
		p.Categories = append(p.Categories, domain.CategoryRef{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return p
}
