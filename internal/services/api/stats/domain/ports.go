package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	TopProducts(ctx context.Context, in TopInput) ([]ProductSales, error)
	TopCategories(ctx context.Context, in TopInput) ([]CategorySales, error)
	Revenue(ctx context.Context, in RevenueInput) ([]DailyRevenue, error)
}
