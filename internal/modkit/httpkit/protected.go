package httpkit

import (
	"storefront/internal/platform/auth"
	phttp "storefront/internal/platform/net/http"
	"storefront/internal/platform/net/middleware"
)

// Protected groups routes that need an authenticated caller
func Protected(r Router, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(middleware.RequireUser(phttp.JSON))
		fn(gr)
	})
}

// Admin groups routes restricted to the ADMIN role
func Admin(r Router, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(middleware.RequireRole(phttp.JSON, auth.RoleAdmin))
		fn(gr)
	})
}
