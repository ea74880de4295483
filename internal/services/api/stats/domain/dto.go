// Package domain holds DTOs for stats http and service contracts
package domain

import "storefront/internal/core/price"

// Windows are whole UTC days, both ends inclusive

// DefaultLimit is used when a query leaves limit empty
const DefaultLimit = 10

// MaxWindowDays caps the span of one query
const MaxWindowDays = 366

// TimeRange defines a start and end day for queries
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2026-10-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2026-10-31"`
}

// TopInput asks for best sellers in a window
type TopInput struct {
	Range TimeRange `json:"range"`
	// optional filters
	Currency string `json:"currency,omitempty" validate:"omitempty,len=3,uppercase" example:"BRL"`
	Limit    int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// RevenueInput asks for revenue per day in a window
type RevenueInput struct {
	Range    TimeRange `json:"range"`
	Currency string    `json:"currency,omitempty" validate:"omitempty,len=3,uppercase" example:"BRL"`
}

// ProductSales is one best selling product
type ProductSales struct {
	ProductID string       `json:"product_id" example:"5e7d0c1a-2b3c-4d5e-8f9a-0b1c2d3e4f5a"`
	Name      string       `json:"name" example:"Enamel mug"`
	Currency  string       `json:"currency" example:"BRL"`
	Quantity  uint64       `json:"quantity" example:"42"`
	Orders    uint64       `json:"orders" example:"17"`
	Revenue   price.Amount `json:"revenue" swaggertype:"number" example:"835.8"`
}

// CategorySales is one best selling category; a line counts once per category it carries
type CategorySales struct {
	Category string       `json:"category" example:"Kitchen"`
	Currency string       `json:"currency" example:"BRL"`
	Quantity uint64       `json:"quantity" example:"120"`
	Orders   uint64       `json:"orders" example:"51"`
	Revenue  price.Amount `json:"revenue" swaggertype:"number" example:"2390.5"`
}

// DailyRevenue is the paid revenue of one day
type DailyRevenue struct {
	Day      string       `json:"day" example:"2026-10-01"`
	Currency string       `json:"currency" example:"BRL"`
	Orders   uint64       `json:"orders" example:"9"`
	Revenue  price.Amount `json:"revenue" swaggertype:"number" example:"412.3"`
}
