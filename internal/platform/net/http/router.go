package http

import "net/http"

// Handler is a plain handler func; the JSON sugar in sugar.go produces these
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount their routes on
// AdaptChi provides the only implementation; modules never see chi directly
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)

	// Handle mounts a raw handler, e.g. swagger UI or pprof under a wildcard
	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)

	// Group and Route scope middleware; Route also adds a path prefix
	Group(fn func(Router))
	Route(pattern string, fn func(Router))
}
