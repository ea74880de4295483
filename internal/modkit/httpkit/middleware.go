package httpkit

import (
	"net/http"
	"time"

	phttp "storefront/internal/platform/net/http"
	"storefront/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout time.Duration
	Slow    time.Duration
	CORS    middleware.CORSOptions
}

// CommonStack is the middleware every /api request passes through
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return append(middleware.Defaults(o.Timeout),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.CORS(o.CORS),
	)
}

// Auth attaches the bearer principal when a token is present
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Authenticate(p, phttp.JSON)
}
