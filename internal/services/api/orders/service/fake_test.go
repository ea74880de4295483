package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"storefront/internal/modkit/repokit"
	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/store/storetest"
	"storefront/internal/services/api/orders/domain"
	"storefront/internal/services/api/orders/repo"

	"github.com/shopspring/decimal"
)

const (
	mugID  = "11111111-1111-4111-8111-111111111111"
	teaID  = "22222222-2222-4222-8222-222222222222"
	usdID  = "33333333-3333-4333-8333-333333333333"
	client = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	other  = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
)

type memRepo struct {
	mu     sync.Mutex
	prices map[string]repo.RowPrice
	orders map[string]repo.RowOrder
	items  map[string][]repo.RowItem
}

func newMem() *memRepo {
	return &memRepo{
		prices: map[string]repo.RowPrice{
			mugID: {ID: mugID, Name: "Mug", Price: decimal.RequireFromString("19.90"), Currency: "BRL"},
			teaID: {ID: teaID, Name: "Tea", Price: decimal.RequireFromString("0.10"), Currency: "BRL"},
			usdID: {ID: usdID, Name: "Import", Price: decimal.RequireFromString("5"), Currency: "USD"},
		},
		orders: map[string]repo.RowOrder{},
		items:  map[string][]repo.RowItem{},
	}
}

func (m *memRepo) PricesForUpdate(_ context.Context, ids []string) ([]repo.RowPrice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []repo.RowPrice
	for _, id := range ids {
		if p, ok := m.prices[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memRepo) Insert(_ context.Context, o repo.RowOrder, items []repo.RowItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = o
	m.items[o.ID] = slices.Clone(items)
	return nil
}

func (m *memRepo) ByID(_ context.Context, id string, _ bool) (repo.RowOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return repo.RowOrder{}, perr.NotFoundf("order not found")
}

func (m *memRepo) Items(_ context.Context, ids []string) (map[string][]repo.RowItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string][]repo.RowItem{}
	for _, id := range ids {
		out[id] = m.items[id]
	}
	return out, nil
}

func (m *memRepo) filtered(clientID string) []repo.RowOrder {
	var out []repo.RowOrder
	for _, o := range m.orders {
		if clientID == "" || o.ClientID == clientID {
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(a, b repo.RowOrder) int { return b.Moment.Compare(a.Moment) })
	return out
}

func (m *memRepo) List(_ context.Context, clientID string, limit, offset int) ([]repo.RowOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.filtered(clientID)
	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(len(all), offset+limit)], nil
}

func (m *memRepo) Count(_ context.Context, clientID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.filtered(clientID)), nil
}

func (m *memRepo) Transition(_ context.Context, id, from, to string, paidAt *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || o.Status != from {
		return perr.NotFoundf("order not found")
	}
	o.Status = to
	if paidAt != nil {
		o.PaidAt = paidAt
	}
	m.orders[id] = o
	return nil
}

func (m *memRepo) ExpireWaiting(_ context.Context, cutoff time.Time, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for id, o := range m.orders {
		if len(ids) == limit {
			break
		}
		if o.Status == string(domain.StatusWaitingPayment) && o.Moment.Before(cutoff) {
			o.Status = string(domain.StatusCanceled)
			m.orders[id] = o
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memRepo) SaleLines(_ context.Context, orderID string) ([]repo.RowSaleLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []repo.RowSaleLine
	for _, it := range m.items[orderID] {
		out = append(out, repo.RowSaleLine{RowItem: it, CategoryNames: []string{"Kitchen"}})
	}
	return out, nil
}

type captureSink struct {
	mu    sync.Mutex
	lines []domain.SaleLine
	err   error
}

func (c *captureSink) Record(_ context.Context, lines []domain.SaleLine) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, lines...)
	return c.err
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	svc   *Svc
	mem   *memRepo
	sink  *captureSink
	clock *clock
	tx    *storetest.Tx
}

func newFixture(cfg Config) *fixture {
	f := &fixture{
		mem:   newMem(),
		sink:  &captureSink{},
		clock: &clock{t: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)},
		tx:    &storetest.Tx{},
	}
	f.svc = New(f.tx, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f.mem }), f.sink, cfg)
	f.svc.now = f.clock.now
	n := 0
	f.svc.newID = func() string {
		n++
		return "order-" + string(rune('0'+n))
	}
	return f
}
