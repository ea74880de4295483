package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves pprof under prefix (e.g. "/debug") when enabled
// mws wrap only the profiler routes, so callers can gate them behind auth
func MountProfiler(r Router, prefix string, enabled bool, mws ...func(stdhttp.Handler) stdhttp.Handler) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	r.Group(func(g Router) {
		g.Use(mws...)
		g.Handle(prefix, h)
		g.Handle(prefix+"/*", h)
	})
}
