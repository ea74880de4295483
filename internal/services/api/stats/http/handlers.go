// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"storefront/internal/modkit/httpkit"
	"storefront/internal/services/api/stats/domain"
	svc "storefront/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router; all of them are admin only
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Admin(r, func(r httpkit.Router) {
		// best sellers in window
		httpkit.PostJSON[domain.TopInput](r, "/products", h.topProducts)

		// best categories in window
		httpkit.PostJSON[domain.TopInput](r, "/categories", h.topCategories)

		// revenue buckets by day
		httpkit.PostJSON[domain.RevenueInput](r, "/revenue", h.revenue)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /stats/products Stats statsTopProducts
// @Summary Best selling products
// @Tags Stats
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body domain.TopInput true "Query"
// @Success 200 {array} domain.ProductSales "ok"
// @Router /stats/products [post]
func (h *handlers) topProducts(r *stdhttp.Request, in domain.TopInput) (any, error) {
	return h.svc.TopProducts(r.Context(), in)
}

// swagger:route POST /stats/categories Stats statsTopCategories
// @Summary Best selling categories
// @Tags Stats
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body domain.TopInput true "Query"
// @Success 200 {array} domain.CategorySales "ok"
// @Router /stats/categories [post]
func (h *handlers) topCategories(r *stdhttp.Request, in domain.TopInput) (any, error) {
	return h.svc.TopCategories(r.Context(), in)
}

// swagger:route POST /stats/revenue Stats statsRevenue
// @Summary Paid revenue by day
// @Tags Stats
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body domain.RevenueInput true "Query"
// @Success 200 {array} domain.DailyRevenue "ok"
// @Router /stats/revenue [post]
func (h *handlers) revenue(r *stdhttp.Request, in domain.RevenueInput) (any, error) {
	return h.svc.Revenue(r.Context(), in)
}
