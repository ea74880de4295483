// Package service contains categories workflows
package service

import (
	"context"
	"strings"

	"storefront/internal/core/normalize"
	"storefront/internal/modkit/repokit"
	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/logger"
	"storefront/internal/services/api/categories/domain"
	"storefront/internal/services/api/categories/repo"

	"github.com/google/uuid"
)

// Service defines the service contract for categories
type Service interface {
	domain.ServicePort
	domain.Resolver
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	newID  func() string
}

// New creates a new categories service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("categories.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("categories.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, newID: uuid.NewString}
}

// List returns all categories ordered by name
func (s *Svc) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(rows))
	for _, r := range rows {
		out = append(out, toCategory(r))
	}
	return out, nil
}

// Get returns one category
func (s *Svc) Get(ctx context.Context, id string) (domain.Category, error) {
	r, err := s.Repo.ByID(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}
	return toCategory(r), nil
}

// Create adds a category; names equal after folding are duplicates
func (s *Svc) Create(ctx context.Context, in domain.CategoryInput) (domain.Category, error) {
	row, err := s.row(s.newID(), in.Name)
	if err != nil {
		return domain.Category{}, err
	}
	if err := s.Repo.Insert(ctx, row); err != nil {
		return domain.Category{}, err
	}
	logger.C(ctx).Info().Str("category_id", row.ID).Str("slug", row.Slug).Msg("category created")
	return toCategory(row), nil
}

// Update renames a category and recomputes its slug
func (s *Svc) Update(ctx context.Context, id string, in domain.CategoryInput) (domain.Category, error) {
	row, err := s.row(id, in.Name)
	if err != nil {
		return domain.Category{}, err
	}
	if err := s.Repo.Update(ctx, row); err != nil {
		return domain.Category{}, err
	}
	return toCategory(row), nil
}

// Delete removes a category not referenced by any product
func (s *Svc) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// Ensure returns the category with name's slug, creating it when missing
func (s *Svc) Ensure(ctx context.Context, name string) (domain.Category, error) {
	row, err := s.row(s.newID(), name)
	if err != nil {
		return domain.Category{}, err
	}
	err = repokit.WithTxRepo(ctx, s.db, s.binder, func(r repo.Repo) error {
		existing, err := r.BySlug(ctx, row.Slug)
		if err == nil {
			row = existing
			return nil
		}
		if !perr.IsCode(err, perr.ErrorCodeNotFound) {
			return err
		}
		return r.Insert(ctx, row)
	})
	if err != nil {
		return domain.Category{}, err
	}
	return toCategory(row), nil
}

func (s *Svc) row(id, name string) (repo.RowCategory, error) {
	name = strings.Join(strings.Fields(name), " ")
	slug := normalize.Slug(name)
	if slug == "" {
		return repo.RowCategory{}, perr.WithField(perr.InvalidArgf("category name must contain letters or digits"), "name")
	}
	return repo.RowCategory{ID: id, Name: name, NameFolded: normalize.Fold(name), Slug: slug}, nil
}

func toCategory(r repo.RowCategory) domain.Category {
	return domain.Category{ID: r.ID, Name: r.Name, Slug: r.Slug}
}
