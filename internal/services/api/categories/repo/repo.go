// Package repo provides postgres access for categories
package repo

import (
	"context"

	"storefront/internal/modkit/repokit"
	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/store"
)

// Repo defines the repository contract for categories
type Repo interface {
	List(ctx context.Context) ([]RowCategory, error)
	ByID(ctx context.Context, id string) (RowCategory, error)
	BySlug(ctx context.Context, slug string) (RowCategory, error)
	Insert(ctx context.Context, c RowCategory) error
	Update(ctx context.Context, c RowCategory) error
	Delete(ctx context.Context, id string) error
}

// RowCategory is a categories row
type RowCategory struct {
	ID         string
	Name       string
	NameFolded string
	Slug       string
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

const selectCategory = `select id::text, name, name_folded, slug from categories `

func scanCategory(row store.Row) (RowCategory, error) {
	var c RowCategory
	err := row.Scan(&c.ID, &c.Name, &c.NameFolded, &c.Slug)
	return c, err
}

func (r *queries) List(ctx context.Context) ([]RowCategory, error) {
	return store.Many(ctx, r.q, scanCategory, selectCategory+`order by name_folded`)
}

func (r *queries) ByID(ctx context.Context, id string) (RowCategory, error) {
	c, err := store.One(ctx, r.q, scanCategory, selectCategory+`where id = $1`, id)
	return c, store.NotFound(err, "category")
}

func (r *queries) BySlug(ctx context.Context, slug string) (RowCategory, error) {
	c, err := store.One(ctx, r.q, scanCategory, selectCategory+`where slug = $1`, slug)
	return c, store.NotFound(err, "category")
}

func (r *queries) Insert(ctx context.Context, c RowCategory) error {
	_, err := r.q.Exec(ctx, `insert into categories (id, name, name_folded, slug) values ($1, $2, $3, $4)`,
		c.ID, c.Name, c.NameFolded, c.Slug)
	return duplicateName(perr.FromPostgres(err, "insert category"))
}

func (r *queries) Update(ctx context.Context, c RowCategory) error {
	err := store.ExecOne(ctx, r.q, `update categories set name = $2, name_folded = $3, slug = $4 where id = $1`,
		c.ID, c.Name, c.NameFolded, c.Slug)
	if err != nil && !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return duplicateName(perr.FromPostgres(err, "update category"))
	}
	return store.NotFound(err, "category")
}

func (r *queries) Delete(ctx context.Context, id string) error {
	err := store.ExecOne(ctx, r.q, `delete from categories where id = $1`, id)
	if perr.IsStillReferenced(err) {
		return perr.Wrap(err, perr.ErrorCodeConflict, "category is still used by products")
	}
	return store.NotFound(err, "category")
}

// both unique constraints derive from the name, so either one is reported on field name
func duplicateName(err error) error {
	if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		return perr.WithField(perr.Wrap(err, perr.ErrorCodeDuplicateKey, "category name already exists"), "name")
	}
	return err
}
