// Package http provides http transport for users
package http

import (
	stdhttp "net/http"

	"storefront/internal/modkit/httpkit"
	"storefront/internal/services/api/users/domain"
	svc "storefront/internal/services/api/users/service"
)

// Register mounts users endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.CreateJSON[domain.RegisterInput](r, "/", h.register)
	httpkit.Protected(r, func(pr httpkit.Router) {
		httpkit.GetJSON(pr, "/me", h.me)
		httpkit.GetJSON(pr, "/{id}", h.get)
		httpkit.PutJSON[domain.UpdateInput](pr, "/{id}", h.update)
	})
	httpkit.Admin(r, func(ar httpkit.Router) {
		httpkit.GetJSON(ar, "/", h.list)
		httpkit.DeleteJSON(ar, "/{id}", h.delete)
	})
}

type handlers struct{ svc svc.Service }

// @Summary Register a client account
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.RegisterInput true "Account"
// @Success 201 {object} domain.User
// @Router /users [post]
func (h *handlers) register(r *stdhttp.Request, in domain.RegisterInput) (any, error) {
	return h.svc.Register(r.Context(), in)
}

// @Summary Current user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Router /users/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	p, err := httpkit.Caller(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), p, p.UserID)
}

// @Summary Get a user (admin or self)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} domain.User
// @Router /users/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	p, err := httpkit.Caller(r)
	if err != nil {
		return nil, err
	}
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), p, id)
}

// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page, starting at 1"
// @Param size query int false "Page size"
// @Success 200 {object} httpkit.Page[domain.User]
// @Router /users [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	page, size, err := httpkit.Paging(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), page, size)
}

// @Summary Update a user profile (admin or self)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param payload body domain.UpdateInput true "Profile"
// @Success 200 {object} domain.User
// @Router /users/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	p, err := httpkit.Caller(r)
	if err != nil {
		return nil, err
	}
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), p, id, in)
}

// @Summary Delete a user
// @Tags Users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Router /users/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return nil, h.svc.Delete(r.Context(), id)
}
