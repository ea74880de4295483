// Package module wires the token endpoint into the API using modkit
package module

import (
	modkit "storefront/internal/modkit"
	"storefront/internal/modkit/httpkit"
	authhttp "storefront/internal/services/api/auth/http"
	authsvc "storefront/internal/services/api/auth/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc authsvc.Service
}

// New constructs the auth module; the users Authenticator must be injected with modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("auth"), modkit.WithPrefix("/auth")}, opts...)...)

	in, ok := modkit.InjectedPorts[Ports](b)
	if !ok || in.Users == nil {
		panic("auth module requires Ports{Users} via modkit.WithPorts")
	}
	if deps.Tokens == nil {
		panic("auth module requires deps.Tokens")
	}

	m := &Module{svc: authsvc.New(in.Users, deps.Tokens)}
	m.Base = modkit.NewBase(b, nil, func(r httpkit.Router) {
		authhttp.Register(r, m.svc)
	})
	return m
}
