// Package domain holds DTOs for orders http and service contracts
package domain

import (
	"context"
	"time"

	"storefront/internal/core/price"
	"storefront/internal/modkit/httpkit"

	"github.com/shopspring/decimal"
)

// MaxItems bounds the distinct lines of one order
const MaxItems = 50

// ItemInput is one requested line
type ItemInput struct {
	ProductID string `json:"product_id" validate:"required,uuid" example:"5e7d0c1a-2b3c-4d5e-8f9a-0b1c2d3e4f5a"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=1000" example:"2"`
}

// PlaceInput places an order for the caller
type PlaceInput struct {
	Items []ItemInput `json:"items" validate:"required,min=1,max=50,dive"`
}

// StatusInput moves a paid order along fulfilment
type StatusInput struct {
	Status Status `json:"status" validate:"required,oneof=SHIPPED DELIVERED" example:"SHIPPED"`
}

// Item is an order line with the unit price captured when the order was placed
type Item struct {
	ProductID string       `json:"product_id"`
	Name      string       `json:"name"`
	Quantity  int          `json:"quantity"`
	UnitPrice price.Amount `json:"unit_price" swaggertype:"number"`
	Subtotal  price.Amount `json:"subtotal" swaggertype:"number"`
}

// Order is the client facing order view
type Order struct {
	ID       string       `json:"id"`
	ClientID string       `json:"client_id"`
	Status   Status       `json:"status"`
	Total    price.Amount `json:"total" swaggertype:"number"`
	Currency string       `json:"currency"`
	Moment   time.Time    `json:"moment"`
	PaidAt   *time.Time   `json:"paid_at,omitempty"`
	Items    []Item       `json:"items"`
}

// SaleLine is one paid order line as recorded for sales analytics
type SaleLine struct {
	OrderID       string
	ClientID      string
	ProductID     string
	ProductName   string
	CategoryNames []string
	Quantity      int
	UnitPrice     decimal.Decimal
	LineTotal     decimal.Decimal
	Currency      string
	PaidAt        time.Time
}

// ServicePort defines the service contract for orders
type ServicePort interface {
	Place(ctx context.Context, caller httpkit.Principal, in PlaceInput) (Order, error)
	List(ctx context.Context, caller httpkit.Principal, page, size int) (httpkit.Page[Order], error)
	Get(ctx context.Context, caller httpkit.Principal, id string) (Order, error)
	Pay(ctx context.Context, caller httpkit.Principal, id string) (Order, error)
	Cancel(ctx context.Context, caller httpkit.Principal, id string) (Order, error)
	SetStatus(ctx context.Context, id string, to Status) (Order, error)
}

// SalesSink receives the lines of every paid order
type SalesSink interface {
	Record(ctx context.Context, lines []SaleLine) error
}

// Expirer cancels unpaid orders older than a cutoff
type Expirer interface {
	ExpireBefore(ctx context.Context, cutoff time.Time) (int, error)
}
