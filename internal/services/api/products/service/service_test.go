package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/internal/core/flexdate"
	"storefront/internal/core/price"
	"storefront/internal/modkit/repokit"
	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/store/storetest"
	"storefront/internal/services/api/products/domain"
	"storefront/internal/services/api/products/repo"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownCats = map[string]repo.RowCategory{
	"cat-a": {ID: "cat-a", Name: "Kitchen", Slug: "kitchen"},
	"cat-b": {ID: "cat-b", Name: "Gifts", Slug: "gifts"},
}

type memRepo struct {
	mu       sync.Mutex
	products map[string]repo.RowProduct
	links    map[string][]string
	ordered  map[string]bool
}

func newMem() *memRepo {
	return &memRepo{products: map[string]repo.RowProduct{}, links: map[string][]string{}, ordered: map[string]bool{}}
}

func (m *memRepo) Insert(_ context.Context, p repo.RowProduct) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.CreatedAt = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	p.UpdatedAt = p.CreatedAt
	m.products[p.ID] = p
	return nil
}

func (m *memRepo) Update(_ context.Context, p repo.RowProduct) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.products[p.ID]
	if !ok {
		return perr.NotFoundf("product not found")
	}
	p.CreatedAt = old.CreatedAt
	m.products[p.ID] = p
	return nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ordered[id] {
		return perr.Conflictf("product is part of an order and cannot be deleted")
	}
	if _, ok := m.products[id]; !ok {
		return perr.NotFoundf("product not found")
	}
	delete(m.products, id)
	return nil
}

func (m *memRepo) SetCategories(_ context.Context, id string, cats []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range cats {
		if _, ok := knownCats[c]; !ok {
			return perr.WithField(perr.InvalidArgf("unknown category"), "categories")
		}
	}
	m.links[id] = cats
	return nil
}

func (m *memRepo) ByID(_ context.Context, id string) (repo.RowProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return repo.RowProduct{}, perr.NotFoundf("product not found")
}

func (m *memRepo) match(f repo.Filter) []repo.RowProduct {
	var out []repo.RowProduct
	for _, p := range m.products {
		if f.NameFolded != "" && !strings.Contains(p.NameFolded, f.NameFolded) {
			continue
		}
		if f.Category != "" {
			found := false
			for _, c := range m.links[p.ID] {
				if c == f.Category || knownCats[c].Slug == f.Category {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameFolded < out[j].NameFolded })
	return out
}

func (m *memRepo) List(_ context.Context, f repo.Filter) ([]repo.RowProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.match(f)
	if f.Offset >= len(all) {
		return nil, nil
	}
	return all[f.Offset:min(len(all), f.Offset+f.Limit)], nil
}

func (m *memRepo) Count(_ context.Context, f repo.Filter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.match(f)), nil
}

func (m *memRepo) Categories(_ context.Context, ids []string) (map[string][]repo.RowCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string][]repo.RowCategory{}
	for _, id := range ids {
		for _, c := range m.links[id] {
			out[id] = append(out[id], knownCats[c])
		}
	}
	return out, nil
}

func newSvc() (*Svc, *memRepo) {
	mem := newMem()
	s := New(&storetest.Tx{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return mem }))
	n := 0
	s.newID = func() string { n++; return fmt.Sprintf("p-%d", n) }
	return s, mem
}

func input(name, raw string, cats ...string) domain.ProductInput {
	return domain.ProductInput{
		Name:        name,
		Description: "A product description long enough",
		Price:       price.NewAmount(price.MustParse(raw)),
		Categories:  cats,
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()
	s, mem := newSvc()

	in := input("  Xícara   de Café ", "R$ 1.234,50", "cat-b", "cat-a", "cat-a")
	in.AvailableFrom = flexdate.On(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC))
	p, err := s.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Xícara de Café", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("1234.5")), p.Price.String())
	assert.Equal(t, "BRL", p.Currency)
	require.NotNil(t, p.AvailableFrom)
	assert.Equal(t, "2026-12-01", p.AvailableFrom.String())
	assert.Equal(t, "xicara de cafe", mem.products["p-1"].NameFolded)

	want := []domain.CategoryRef{{ID: "cat-a", Name: "Kitchen", Slug: "kitchen"}, {ID: "cat-b", Name: "Gifts", Slug: "gifts"}}
	if diff := cmp.Diff(want, p.Categories); diff != "" {
		t.Fatalf("categories (-want +got):\n%s", diff)
	}
}

func TestCreate_Rejects(t *testing.T) {
	t.Parallel()
	s, _ := newSvc()
	ctx := context.Background()

	tests := []struct {
		name  string
		in    domain.ProductInput
		code  perr.ErrorCode
		field string
	}{
		{name: "zero price", in: input("Mug", "0,00", "cat-a"), code: perr.ErrorCodeInvalidArgument, field: "price"},
		{name: "negative price", in: input("Mug", "-5", "cat-a"), code: perr.ErrorCodeInvalidArgument, field: "price"},
		{name: "unset price", in: domain.ProductInput{Name: "Mug", Categories: []string{"cat-a"}}, code: perr.ErrorCodeInvalidArgument, field: "price"},
		{name: "no categories", in: input("Mug", "10"), code: perr.ErrorCodeInvalidArgument, field: "categories"},
		{name: "unknown category", in: input("Mug", "10", "cat-z"), code: perr.ErrorCodeInvalidArgument, field: "categories"},
	}
	for _, tc := range tests {
		_, err := s.Create(ctx, tc.in)
		require.Error(t, err, tc.name)
		e, ok := perr.As(err)
		require.True(t, ok, tc.name)
		assert.Equal(t, tc.code, e.Code(), tc.name)
		assert.Equal(t, tc.field, e.Field(), tc.name)
	}

	bad := input("Mug", "10", "cat-a")
	bad.Currency = "XYZ1"
	_, err := s.Create(ctx, bad)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))

	usd := input("Mug", "10", "cat-a")
	usd.Currency = "usd"
	p, err := s.Create(ctx, usd)
	require.NoError(t, err)
	assert.Equal(t, "USD", p.Currency)
}

func TestListFilters(t *testing.T) {
	t.Parallel()
	s, _ := newSvc()
	ctx := context.Background()
	for _, in := range []domain.ProductInput{
		input("Café Especial", "39,90", "cat-a"),
		input("Caneca", "25", "cat-a", "cat-b"),
		input("Cartão presente", "100", "cat-b"),
	} {
		_, err := s.Create(ctx, in)
		require.NoError(t, err)
	}

	page, err := s.List(ctx, domain.ListInput{Name: "CAFE", Size: 20})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "Café Especial", page.Items[0].Name)

	page, err = s.List(ctx, domain.ListInput{Category: "gifts", Size: 1, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Cartão presente", page.Items[0].Name)

	page, err = s.List(ctx, domain.ListInput{Name: "nothing", Size: 20})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestUpdateAndDelete(t *testing.T) {
	t.Parallel()
	s, mem := newSvc()
	ctx := context.Background()

	p, err := s.Create(ctx, input("Mug", "10", "cat-a"))
	require.NoError(t, err)

	up, err := s.Update(ctx, p.ID, input("Big Mug", "1,234.56", "cat-b"))
	require.NoError(t, err)
	assert.Equal(t, "Big Mug", up.Name)
	assert.Equal(t, "1234.56", up.Price.String())
	assert.Equal(t, []string{"cat-b"}, mem.links[p.ID])

	_, err = s.Update(ctx, "missing", input("Big Mug", "10", "cat-b"))
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))

	mem.ordered[p.ID] = true
	assert.True(t, perr.IsCode(s.Delete(ctx, p.ID), perr.ErrorCodeConflict))
	mem.ordered[p.ID] = false
	require.NoError(t, s.Delete(ctx, p.ID))
}
