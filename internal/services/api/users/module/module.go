// Package module wires users into the API using modkit
package module

import (
	modkit "storefront/internal/modkit"
	"storefront/internal/modkit/httpkit"
	usershttp "storefront/internal/services/api/users/http"
	usersrepo "storefront/internal/services/api/users/repo"
	userssvc "storefront/internal/services/api/users/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc userssvc.Service
}

// New constructs a users module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("users"), modkit.WithPrefix("/users")}, opts...)...)

	svc := userssvc.New(deps.PG, usersrepo.NewPG())
	m := &Module{svc: svc}
	m.Base = modkit.NewBase(b, Ports{Authenticator: svc, Provisioner: svc}, func(r httpkit.Router) {
		usershttp.Register(r, m.svc)
	})
	return m
}

// Service exposes the users service for in process callers such as the admin cli
func (m *Module) Service() userssvc.Service { return m.svc }
