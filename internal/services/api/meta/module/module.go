// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"storefront/internal/core/version"
	modkit "storefront/internal/modkit"
	"storefront/internal/modkit/httpkit"
	metahttp "storefront/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module; readiness pings deps.PG and deps.CH when they can be pinged
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{startedAt: time.Now()}

	d := metahttp.Deps{ServiceName: version.Info().Service, StartedAt: m.startedAt}
	// typed nils must not reach the pinger check
	if deps.PG != nil {
		d.PG = deps.PG
	}
	if deps.CH != nil {
		d.CH = deps.CH
	}

	m.Base = modkit.NewBase(b, nil, func(r httpkit.Router) {
		metahttp.Register(r, d)
	})
	return m
}
