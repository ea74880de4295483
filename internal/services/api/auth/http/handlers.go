// Package http provides http transport for the token endpoint
package http

import (
	stdhttp "net/http"

	"storefront/internal/modkit/httpkit"
	"storefront/internal/services/api/auth/domain"
	svc "storefront/internal/services/api/auth/service"
)

// Register mounts the token endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.TokenInput](r, "/token", h.token)
}

type handlers struct{ svc svc.Service }

// @Summary Exchange email and password for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.TokenInput true "Credentials"
// @Success 200 {object} domain.Token
// @Router /auth/token [post]
func (h *handlers) token(r *stdhttp.Request, in domain.TokenInput) (any, error) {
	return h.svc.Token(r.Context(), in)
}
