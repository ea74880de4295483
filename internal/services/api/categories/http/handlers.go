// Package http provides http transport for categories
package http

import (
	stdhttp "net/http"

	"storefront/internal/modkit/httpkit"
	"storefront/internal/services/api/categories/domain"
	svc "storefront/internal/services/api/categories/service"
)

// Register mounts categories endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetJSON(r, "/", h.list)
	httpkit.GetJSON(r, "/{id}", h.get)
	httpkit.Admin(r, func(ar httpkit.Router) {
		httpkit.CreateJSON[domain.CategoryInput](ar, "/", h.create)
		httpkit.PutJSON[domain.CategoryInput](ar, "/{id}", h.update)
		httpkit.DeleteJSON(ar, "/{id}", h.delete)
	})
}

type handlers struct{ svc svc.Service }

// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} domain.Category
// @Router /categories/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.CategoryInput true "Category"
// @Success 201 {object} domain.Category
// @Router /categories [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CategoryInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// @Summary Rename a category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param payload body domain.CategoryInput true "Category"
// @Success 200 {object} domain.Category
// @Router /categories/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.CategoryInput) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id, in)
}

// @Summary Delete a category
// @Tags Categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204
// @Router /categories/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return nil, h.svc.Delete(r.Context(), id)
}
