// Package module wires categories into the API using modkit
package module

import (
	modkit "storefront/internal/modkit"
	"storefront/internal/modkit/httpkit"
	cathttp "storefront/internal/services/api/categories/http"
	catrepo "storefront/internal/services/api/categories/repo"
	catsvc "storefront/internal/services/api/categories/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc catsvc.Service
}

// New constructs a categories module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("categories"), modkit.WithPrefix("/categories")}, opts...)...)

	m := &Module{svc: catsvc.New(deps.PG, catrepo.NewPG())}
	m.Base = modkit.NewBase(b, Ports{Resolver: m.svc}, func(r httpkit.Router) {
		cathttp.Register(r, m.svc)
	})
	return m
}
