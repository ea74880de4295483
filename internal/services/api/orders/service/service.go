// Package service contains orders workflows
package service

import (
	"context"
	"slices"
	"time"

	"storefront/internal/core/price"
	"storefront/internal/modkit/httpkit"
	"storefront/internal/modkit/repokit"
	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/logger"
	"storefront/internal/services/api/orders/domain"
	"storefront/internal/services/api/orders/repo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service defines the service contract for orders
type Service interface {
	domain.ServicePort
	domain.Expirer
}

// Config tunes the orders service
type Config struct {
	PaymentTTL  time.Duration
	ExpireEvery time.Duration
	ExpireBatch int
	LockTimeout time.Duration
	// MaxTotal caps the total of a single order; zero means no cap
	MaxTotal    decimal.Decimal
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	tx     repokit.TxRunner
	sales  domain.SalesSink
	cfg    Config

	now   func() time.Time
	newID func() string
}

// New creates a new orders service; a nil sink drops sale lines
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], sales domain.SalesSink, cfg Config) *Svc {
	if db == nil {
		panic("orders.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("orders.Service requires a non nil Repo binder")
	}
	if sales == nil {
		sales = NopSink{}
	}
	if cfg.ExpireBatch <= 0 {
		cfg.ExpireBatch = 100
	}
	tx := db
	if cfg.LockTimeout > 0 {
		tx = repokit.WithBeginHooks(db, repokit.LockTimeout(cfg.LockTimeout))
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		tx:     tx,
		sales:  sales,
		cfg:    cfg,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Place creates a WAITING_PAYMENT order for the caller
// unit prices are read and share locked in the same transaction that stores the order
func (s *Svc) Place(ctx context.Context, caller httpkit.Principal, in domain.PlaceInput) (domain.Order, error) {
	if caller.UserID == "" {
		return domain.Order{}, perr.Unauthorizedf("authentication required")
	}
	qty, ids, err := mergeItems(in.Items)
	if err != nil {
		return domain.Order{}, err
	}

	var (
		order repo.RowOrder
		items []repo.RowItem
	)
	err = repokit.WithTxRepo(ctx, s.tx, s.binder, func(r repo.Repo) error {
		prices, err := r.PricesForUpdate(ctx, ids)
		if err != nil {
			return err
		}
		order, items, err = s.build(caller.UserID, ids, qty, prices)
		if err != nil {
			return err
		}
		return r.Insert(ctx, order, items)
	})
	if err != nil {
		return domain.Order{}, err
	}
	logger.C(ctx).Info().
		Str("order_id", order.ID).
		Str("total", order.Total.String()).
		Int("lines", len(items)).
		Msg("order placed")
	return toOrder(order, items), nil
}

// mergeItems sums quantities of repeated products and returns the ids sorted
func mergeItems(in []domain.ItemInput) (map[string]int, []string, error) {
	qty := make(map[string]int, len(in))
	for _, it := range in {
		id, err := uuid.Parse(it.ProductID)
		if err != nil {
			return nil, nil, perr.WithField(perr.InvalidArgf("invalid product id %q", it.ProductID), "items")
		}
		if it.Quantity < 1 {
			return nil, nil, perr.WithField(perr.InvalidArgf("quantity must be at least 1"), "items")
		}
		qty[id.String()] += it.Quantity
	}
	if len(qty) == 0 {
		return nil, nil, perr.WithField(perr.InvalidArgf("an order needs at least one item"), "items")
	}
	if len(qty) > domain.MaxItems {
		return nil, nil, perr.WithField(perr.InvalidArgf("an order takes at most %d distinct products", domain.MaxItems), "items")
	}
	ids := make([]string, 0, len(qty))
	for id := range qty {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return qty, ids, nil
}

func (s *Svc) build(clientID string, ids []string, qty map[string]int, prices []repo.RowPrice) (repo.RowOrder, []repo.RowItem, error) {
	byID := make(map[string]repo.RowPrice, len(prices))
	for _, p := range prices {
		byID[p.ID] = p
	}

	o := repo.RowOrder{
		ID:       s.newID(),
		ClientID: clientID,
		Status:   string(domain.StatusWaitingPayment),
		Total:    decimal.Zero,
		Moment:   s.now().UTC(),
	}
	items := make([]repo.RowItem, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return repo.RowOrder{}, nil, perr.WithField(perr.InvalidArgf("unknown product %s", id), "items")
		}
		if o.Currency == "" {
			o.Currency = p.Currency
		} else if o.Currency != p.Currency {
			return repo.RowOrder{}, nil, perr.WithField(
				perr.InvalidArgf("all products in an order must share a currency, got %s and %s", o.Currency, p.Currency), "items")
		}
		items = append(items, repo.RowItem{
			OrderID:   o.ID,
			ProductID: id,
			Name:      p.Name,
			Quantity:  qty[id],
			UnitPrice: p.Price,
		})
		o.Total = o.Total.Add(p.Price.Mul(decimal.NewFromInt(int64(qty[id]))))
	}
	if s.cfg.MaxTotal.IsPositive() && o.Total.GreaterThan(s.cfg.MaxTotal) {
		return repo.RowOrder{}, nil, perr.WithField(
			perr.InvalidArgf("order total %s %s exceeds the limit of %s", o.Total.StringFixed(2), o.Currency, s.cfg.MaxTotal.StringFixed(2)), "items")
	}
	return o, items, nil
}

// List returns the caller's orders, or every order for admins
func (s *Svc) List(ctx context.Context, caller httpkit.Principal, page, size int) (httpkit.Page[domain.Order], error) {
	if caller.UserID == "" {
		return httpkit.Page[domain.Order]{}, perr.Unauthorizedf("authentication required")
	}
	client := caller.UserID
	if caller.IsAdmin() {
		client = ""
	}
	rows, err := s.Repo.List(ctx, client, size, max(page-1, 0)*size)
	if err != nil {
		return httpkit.Page[domain.Order]{}, err
	}
	total, err := s.Repo.Count(ctx, client)
	if err != nil {
		return httpkit.Page[domain.Order]{}, err
	}
	ids := make([]string, 0, len(rows))
	for _, o := range rows {
		ids = append(ids, o.ID)
	}
	items, err := s.Repo.Items(ctx, ids)
	if err != nil {
		return httpkit.Page[domain.Order]{}, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, o := range rows {
		out = append(out, toOrder(o, items[o.ID]))
	}
	return httpkit.NewPage(out, page, size, total), nil
}

// Get returns one order to its owner or an admin
func (s *Svc) Get(ctx context.Context, caller httpkit.Principal, id string) (domain.Order, error) {
	o, err := s.Repo.ByID(ctx, id, false)
	if err != nil {
		return domain.Order{}, err
	}
	if err := caller.SelfOrAdmin(o.ClientID); err != nil {
		return domain.Order{}, err
	}
	return s.view(ctx, s.Repo, o)
}

// Pay marks a waiting order as paid and forwards its lines to the sales sink
// only the owner pays; the sink failing does not undo the payment
func (s *Svc) Pay(ctx context.Context, caller httpkit.Principal, id string) (domain.Order, error) {
	if caller.UserID == "" {
		return domain.Order{}, perr.Unauthorizedf("authentication required")
	}
	var (
		out   domain.Order
		lines []repo.RowSaleLine
	)
	err := repokit.WithTxRepo(ctx, s.tx, s.binder, func(r repo.Repo) error {
		o, err := r.ByID(ctx, id, true)
		if err != nil {
			return err
		}
		if o.ClientID != caller.UserID {
			return perr.Forbiddenf("only the client who placed the order can pay it")
		}
		paid := s.now().UTC()
		if err := s.transition(ctx, r, &o, domain.StatusPaid, &paid); err != nil {
			return err
		}
		if lines, err = r.SaleLines(ctx, o.ID); err != nil {
			return err
		}
		out, err = s.view(ctx, r, o)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}

	log := logger.C(ctx)
	log.Info().Str("order_id", out.ID).Str("total", out.Total.String()).Msg("order paid")
	if err := s.sales.Record(ctx, saleLines(out, lines)); err != nil {
		log.Error().Err(err).Str("order_id", out.ID).Msg("record sale lines failed")
	}
	return out, nil
}

// Cancel cancels a waiting order for its owner or an admin
func (s *Svc) Cancel(ctx context.Context, caller httpkit.Principal, id string) (domain.Order, error) {
	var out domain.Order
	err := repokit.WithTxRepo(ctx, s.tx, s.binder, func(r repo.Repo) error {
		o, err := r.ByID(ctx, id, true)
		if err != nil {
			return err
		}
		if err := caller.SelfOrAdmin(o.ClientID); err != nil {
			return err
		}
		if err := s.transition(ctx, r, &o, domain.StatusCanceled, nil); err != nil {
			return err
		}
		out, err = s.view(ctx, r, o)
		return err
	})
	if err == nil {
		logger.C(ctx).Info().Str("order_id", id).Msg("order canceled")
	}
	return out, err
}

// SetStatus moves a paid order through fulfilment
func (s *Svc) SetStatus(ctx context.Context, id string, to domain.Status) (domain.Order, error) {
	if to != domain.StatusShipped && to != domain.StatusDelivered {
		return domain.Order{}, perr.WithField(perr.InvalidArgf("status can only be set to %s or %s", domain.StatusShipped, domain.StatusDelivered), "status")
	}
	var out domain.Order
	err := repokit.WithTxRepo(ctx, s.tx, s.binder, func(r repo.Repo) error {
		o, err := r.ByID(ctx, id, true)
		if err != nil {
			return err
		}
		if err := s.transition(ctx, r, &o, to, nil); err != nil {
			return err
		}
		out, err = s.view(ctx, r, o)
		return err
	})
	return out, err
}

func (s *Svc) transition(ctx context.Context, r repo.Repo, o *repo.RowOrder, to domain.Status, paidAt *time.Time) error {
	from := domain.Status(o.Status)
	if !domain.CanTransition(from, to) {
		return perr.Conflictf("order is %s and cannot become %s", from, to)
	}
	if err := r.Transition(ctx, o.ID, string(from), string(to), paidAt); err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return perr.Conflictf("order %s changed concurrently", o.ID)
		}
		return err
	}
	o.Status = string(to)
	if paidAt != nil {
		o.PaidAt = paidAt
	}
	return nil
}

// ExpireBefore cancels WAITING_PAYMENT orders placed before cutoff, in batches
func (s *Svc) ExpireBefore(ctx context.Context, cutoff time.Time) (int, error) {
	total := 0
	for {
		var ids []string
		err := repokit.WithTxRepo(ctx, s.tx, s.binder, func(r repo.Repo) error {
			var err error
			ids, err = r.ExpireWaiting(ctx, cutoff, s.cfg.ExpireBatch)
			return err
		})
		if err != nil {
			return total, err
		}
		total += len(ids)
		if len(ids) < s.cfg.ExpireBatch || ctx.Err() != nil {
			return total, ctx.Err()
		}
	}
}

func (s *Svc) view(ctx context.Context, r repo.Repo, o repo.RowOrder) (domain.Order, error) {
	items, err := r.Items(ctx, []string{o.ID})
	if err != nil {
		return domain.Order{}, err
	}
	return toOrder(o, items[o.ID]), nil
}

func toOrder(o repo.RowOrder, items []repo.RowItem) domain.Order {
	out := domain.Order{
		ID:       o.ID,
		ClientID: o.ClientID,
		Status:   domain.Status(o.Status),
		Total:    price.NewAmount(o.Total),
		Currency: o.Currency,
		Moment:   o.Moment,
		PaidAt:   o.PaidAt,
		Items:    make([]domain.Item, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, domain.Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: price.NewAmount(it.UnitPrice),
			Subtotal:  price.NewAmount(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))),
		})
	}
	return out
}

func saleLines(o domain.Order, rows []repo.RowSaleLine) []domain.SaleLine {
	paid := o.Moment
	if o.PaidAt != nil {
		paid = *o.PaidAt
	}
	out := make([]domain.SaleLine, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.SaleLine{
			OrderID:       o.ID,
			ClientID:      o.ClientID,
			ProductID:     r.ProductID,
			ProductName:   r.Name,
			CategoryNames: r.CategoryNames,
			Quantity:      r.Quantity,
			UnitPrice:     r.UnitPrice,
			LineTotal:     r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity))),
			Currency:      o.Currency,
			PaidAt:        paid,
		})
	}
	return out
}
