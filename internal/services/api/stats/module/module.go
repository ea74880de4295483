// Package module wires stats into the API using modkit
package module

import (
	modkit "storefront/internal/modkit"
	"storefront/internal/modkit/httpkit"
	statshttp "storefront/internal/services/api/stats/http"
	statsrepo "storefront/internal/services/api/stats/repo"
	statssvc "storefront/internal/services/api/stats/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc *statssvc.Svc
}

// New constructs the stats module; without deps.CH the routes answer 503
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("stats"), modkit.WithPrefix("/stats")}, opts...)...)

	var r statsrepo.Repo
	if deps.CH != nil {
		r = statsrepo.NewCH(deps.CH)
	}

	m := &Module{svc: statssvc.New(r)}
	m.Base = modkit.NewBase(b, Ports{Stats: m.svc}, func(rt httpkit.Router) {
		statshttp.Register(rt, m.svc)
	})
	return m
}
