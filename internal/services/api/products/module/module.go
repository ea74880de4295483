// Package module wires products into the API using modkit
package module

import (
	modkit "storefront/internal/modkit"
	"storefront/internal/modkit/httpkit"
	prodhttp "storefront/internal/services/api/products/http"
	prodrepo "storefront/internal/services/api/products/repo"
	prodsvc "storefront/internal/services/api/products/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc prodsvc.Service
}

// New constructs a products module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("products"), modkit.WithPrefix("/products")}, opts...)...)

	m := &Module{svc: prodsvc.New(deps.PG, prodrepo.NewPG())}
	m.Base = modkit.NewBase(b, Ports{Creator: m.svc}, func(r httpkit.Router) {
		prodhttp.Register(r, m.svc)
	})
	return m
}
