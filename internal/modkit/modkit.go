package modkit

import (
	"net/http"

	phttp "storefront/internal/platform/net/http"
	str "storefront/internal/platform/strings"
)

// Module is the common surface for API modules that can mount routes and expose ports
// keep this tiny so modules stay decoupled
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set interface for cross wiring
	Ports() any
	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

// Base implements Module from Built options plus the module's own route registration
// modules embed it and add their services
type Base struct {
	built    Built
	ports    any
	register func(phttp.Router)
}

// NewBase binds b to register; ports is what Ports returns
func NewBase(b Built, ports any, register func(phttp.Router)) Base {
	return Base{built: b, ports: ports, register: register}
}

// MountRoutes mounts the module under its prefix with its middlewares
func (m Base) MountRoutes(r phttp.Router) {
	r.Route(str.MustPrefix(m.built.Prefix), func(rr phttp.Router) {
		if len(m.built.Mw) > 0 {
			rr.Use(m.built.Mw...)
		}
		rr = m.built.Subrouter(rr)
		if m.register != nil {
			m.register(rr)
		}
		m.built.Register(rr)
	})
}

// Name returns the module name
func (m Base) Name() string { return m.built.Name }

// Ports returns the module ports
func (m Base) Ports() any { return m.ports }

// Middlewares returns the module middlewares
func (m Base) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }
