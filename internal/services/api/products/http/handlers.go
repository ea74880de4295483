// Package http provides http transport for products
package http

import (
	stdhttp "net/http"

	"storefront/internal/modkit/httpkit"
	"storefront/internal/services/api/products/domain"
	svc "storefront/internal/services/api/products/service"
)

// Register mounts products endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetJSON(r, "/", h.list)
	httpkit.GetJSON(r, "/{id}", h.get)
	httpkit.Admin(r, func(ar httpkit.Router) {
		httpkit.CreateJSON[domain.ProductInput](ar, "/", h.create)
		httpkit.PutJSON[domain.ProductInput](ar, "/{id}", h.update)
		httpkit.DeleteJSON(ar, "/{id}", h.delete)
	})
}

type handlers struct{ svc svc.Service }

// @Summary Browse the catalog
// @Tags Products
// @Produce json
// @Param name query string false "Name contains, case and accent insensitive"
// @Param category query string false "Category id or slug"
// @Param page query int false "Page, starting at 1"
// @Param size query int false "Page size"
// @Success 200 {object} httpkit.Page[domain.Product]
// @Router /products [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	page, size, err := httpkit.Paging(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), domain.ListInput{
		Name:     httpkit.Query(r, "name"),
		Category: httpkit.Query(r, "category"),
		Page:     page,
		Size:     size,
	})
}

// @Summary Get a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Router /products/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// @Summary Create a product
// @Description price accepts a number or a formatted string such as "R$ 1.234,50" or "1,234.50"
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.ProductInput true "Product"
// @Success 201 {object} domain.Product
// @Router /products [post]
func (h *handlers) create(r *stdhttp.Request, in domain.ProductInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// @Summary Replace a product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param payload body domain.ProductInput true "Product"
// @Success 200 {object} domain.Product
// @Router /products/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.ProductInput) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id, in)
}

// @Summary Delete a product
// @Tags Products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Router /products/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return nil, h.svc.Delete(r.Context(), id)
}
