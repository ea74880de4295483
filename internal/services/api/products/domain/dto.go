// Package domain holds DTOs for products http and service contracts
package domain

import (
	"context"
	"time"

	"storefront/internal/core/flexdate"
	"storefront/internal/core/price"
	"storefront/internal/modkit/httpkit"
)

// DefaultCurrency applies when a product is created without one
const DefaultCurrency = "BRL"

// ProductInput creates or replaces a product
// price accepts a JSON number or a formatted string such as "R$ 1.234,50"
type ProductInput struct {
	Name          string        `json:"name" validate:"required,min=3,max=80" example:"Espresso cup"`
	Description   string        `json:"description" validate:"required,min=10,max=2000" example:"Porcelain cup, 90ml, dishwasher safe"`
	Price         price.Amount  `json:"price" validate:"required,money" swaggertype:"string" example:"1.234,50"`
	Currency      string        `json:"currency,omitempty" validate:"omitempty,len=3,uppercase,currency_code" example:"BRL"`
	ImgURL        string        `json:"img_url,omitempty" validate:"omitempty,url,max=500" example:"https://cdn.example.com/cup.png"`
	AvailableFrom flexdate.Date `json:"available_from,omitempty" swaggertype:"string" example:"01/12/2026"`
	Categories    []string      `json:"categories" validate:"required,min=1,max=10,dive,uuid" example:"0b6f3a1e-2c4d-4e5f-8a9b-0c1d2e3f4a5b"`
}

// CategoryRef is the category summary embedded in a product
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Product is the catalog view of a product
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         price.Amount   `json:"price" swaggertype:"number" example:"1234.5"`
	Currency      string         `json:"currency"`
	ImgURL        string         `json:"img_url,omitempty"`
	AvailableFrom *flexdate.Date `json:"available_from,omitempty" swaggertype:"string"`
	Categories    []CategoryRef  `json:"categories"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ListInput filters the catalog; Name matches case and accent insensitively, Category is an id or slug
type ListInput struct {
	Name     string
	Category string
	Page     int
	Size     int
}

// ServicePort defines the service contract for products
type ServicePort interface {
	List(ctx context.Context, in ListInput) (httpkit.Page[Product], error)
	Get(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, in ProductInput) (Product, error)
	Update(ctx context.Context, id string, in ProductInput) (Product, error)
	Delete(ctx context.Context, id string) error
}

// Creator is the write capability the catalog seeder needs
type Creator interface {
	Create(ctx context.Context, in ProductInput) (Product, error)
}
