// Package http provides http transport for orders
package http

import (
	stdhttp "net/http"

	"storefront/internal/modkit/httpkit"
	"storefront/internal/services/api/orders/domain"
	svc "storefront/internal/services/api/orders/service"
)

// Register mounts orders endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Protected(r, func(pr httpkit.Router) {
		httpkit.CreateJSON[domain.PlaceInput](pr, "/", h.place)
		httpkit.GetJSON(pr, "/", h.list)
		httpkit.GetJSON(pr, "/{id}", h.get)
		httpkit.ActionJSON(pr, "/{id}/payment", h.pay)
		httpkit.ActionJSON(pr, "/{id}/cancel", h.cancel)
	})
	httpkit.Admin(r, func(ar httpkit.Router) {
		httpkit.PatchJSON[domain.StatusInput](ar, "/{id}/status", h.status)
	})
}

type handlers struct{ svc svc.Service }

func (h *handlers) callerAndID(r *stdhttp.Request) (httpkit.Principal, string, error) {
	p, err := httpkit.Caller(r)
	if err != nil {
		return p, "", err
	}
	id, err := httpkit.UUIDParam(r, "id")
	return p, id, err
}

// @Summary Place an order
// @Description unit prices are captured from the catalog at placement; repeated products are merged
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.PlaceInput true "Items"
// @Success 201 {object} domain.Order
// @Router /orders [post]
func (h *handlers) place(r *stdhttp.Request, in domain.PlaceInput) (any, error) {
	p, err := httpkit.Caller(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Place(r.Context(), p, in)
}

// @Summary List orders (own, or all for admins)
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page, starting at 1"
// @Param size query int false "Page size"
// @Success 200 {object} httpkit.Page[domain.Order]
// @Router /orders [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	p, err := httpkit.Caller(r)
	if err != nil {
		return nil, err
	}
	page, size, err := httpkit.Paging(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), p, page, size)
}

// @Summary Get an order (owner or admin)
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Router /orders/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	p, id, err := h.callerAndID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), p, id)
}

// @Summary Pay an order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Router /orders/{id}/payment [post]
func (h *handlers) pay(r *stdhttp.Request) (any, error) {
	p, id, err := h.callerAndID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Pay(r.Context(), p, id)
}

// @Summary Cancel a waiting order (owner or admin)
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Router /orders/{id}/cancel [post]
func (h *handlers) cancel(r *stdhttp.Request) (any, error) {
	p, id, err := h.callerAndID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Cancel(r.Context(), p, id)
}

// @Summary Advance fulfilment of a paid order
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param payload body domain.StatusInput true "Next status"
// @Success 200 {object} domain.Order
// @Router /orders/{id}/status [patch]
func (h *handlers) status(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.SetStatus(r.Context(), id, in.Status)
}
