package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"storefront/internal/modkit/repokit"
	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/store/storetest"
	"storefront/internal/services/api/categories/domain"
	"storefront/internal/services/api/categories/repo"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu   sync.Mutex
	rows map[string]repo.RowCategory
	used map[string]bool
}

func (m *memRepo) List(context.Context) ([]repo.RowCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repo.RowCategory, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameFolded < out[j].NameFolded })
	return out, nil
}

func (m *memRepo) ByID(_ context.Context, id string) (repo.RowCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rows[id]; ok {
		return r, nil
	}
	return repo.RowCategory{}, perr.NotFoundf("category not found")
}

func (m *memRepo) BySlug(_ context.Context, slug string) (repo.RowCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.Slug == slug {
			return r, nil
		}
	}
	return repo.RowCategory{}, perr.NotFoundf("category not found")
}

func (m *memRepo) Insert(_ context.Context, c repo.RowCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.Slug == c.Slug || r.NameFolded == c.NameFolded {
			return perr.WithField(perr.New(perr.ErrorCodeDuplicateKey, "category name already exists"), "name")
		}
	}
	m.rows[c.ID] = c
	return nil
}

func (m *memRepo) Update(_ context.Context, c repo.RowCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[c.ID]; !ok {
		return perr.NotFoundf("category not found")
	}
	m.rows[c.ID] = c
	return nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.used[id] {
		return perr.Conflictf("category is still used by products")
	}
	if _, ok := m.rows[id]; !ok {
		return perr.NotFoundf("category not found")
	}
	delete(m.rows, id)
	return nil
}

func newSvc() (*Svc, *memRepo) {
	mem := &memRepo{rows: map[string]repo.RowCategory{}, used: map[string]bool{}}
	s := New(&storetest.Tx{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return mem }))
	n := 0
	s.newID = func() string { n++; return fmt.Sprintf("c-%d", n) }
	return s, mem
}

func TestCreateAndList(t *testing.T) {
	t.Parallel()
	s, _ := newSvc()
	ctx := context.Background()

	_, err := s.Create(ctx, domain.CategoryInput{Name: "  Eletrônicos   & Games "})
	require.NoError(t, err)
	_, err = s.Create(ctx, domain.CategoryInput{Name: "Books"})
	require.NoError(t, err)

	got, err := s.List(ctx)
	require.NoError(t, err)
	want := []domain.Category{
		{ID: "c-2", Name: "Books", Slug: "books"},
		{ID: "c-1", Name: "Eletrônicos & Games", Slug: "eletronicos-games"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}

	_, err = s.Create(ctx, domain.CategoryInput{Name: "ELETRONICOS & games"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDuplicateKey))

	_, err = s.Create(ctx, domain.CategoryInput{Name: "&&"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestUpdateRecomputesSlug(t *testing.T) {
	t.Parallel()
	s, mem := newSvc()
	ctx := context.Background()

	c, err := s.Create(ctx, domain.CategoryInput{Name: "Cafe"})
	require.NoError(t, err)
	up, err := s.Update(ctx, c.ID, domain.CategoryInput{Name: "Café Especial"})
	require.NoError(t, err)
	assert.Equal(t, "cafe-especial", up.Slug)
	assert.Equal(t, "cafe especial", mem.rows[c.ID].NameFolded)

	_, err = s.Update(ctx, "missing", domain.CategoryInput{Name: "X1"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
}

func TestDeleteReferenced(t *testing.T) {
	t.Parallel()
	s, mem := newSvc()
	ctx := context.Background()

	c, err := s.Create(ctx, domain.CategoryInput{Name: "Toys"})
	require.NoError(t, err)
	mem.used[c.ID] = true
	assert.True(t, perr.IsCode(s.Delete(ctx, c.ID), perr.ErrorCodeConflict))

	mem.used[c.ID] = false
	require.NoError(t, s.Delete(ctx, c.ID))
	_, err = s.Get(ctx, c.ID)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
}

func TestEnsureIsIdempotent(t *testing.T) {
	t.Parallel()
	s, mem := newSvc()
	ctx := context.Background()

	a, err := s.Ensure(ctx, "Garden")
	require.NoError(t, err)
	b, err := s.Ensure(ctx, "garden ")
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
	assert.Len(t, mem.rows, 1)
}
