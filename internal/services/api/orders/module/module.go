// Package module wires orders into the API using modkit
package module

import (
	modkit "storefront/internal/modkit"
	"storefront/internal/modkit/httpkit"
	"storefront/internal/services/api/orders/domain"
	ordershttp "storefront/internal/services/api/orders/http"
	ordersrepo "storefront/internal/services/api/orders/repo"
	orderssvc "storefront/internal/services/api/orders/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc *orderssvc.Svc
}

// New constructs an orders module; paid lines go to clickhouse when deps.CH is set
func New(deps modkit.Deps, opts Options, mods ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("orders"), modkit.WithPrefix("/orders")}, mods...)...)

	var sink domain.SalesSink = orderssvc.NopSink{}
	if deps.CH != nil {
		sink = orderssvc.NewCHSink(deps.CH)
	}

	m := &Module{svc: orderssvc.New(deps.PG, ordersrepo.NewPG(), sink, opts.service())}
	m.Base = modkit.NewBase(b, Ports{Expirer: m.svc}, func(r httpkit.Router) {
		ordershttp.Register(r, m.svc)
	})
	return m
}
