// Package domain holds DTOs for categories http and service contracts
package domain

import "context"

// CategoryInput creates or renames a category
type CategoryInput struct {
	Name string `json:"name" validate:"required,min=2,max=60" example:"Home & Kitchen"`
}

// Category is a product grouping; Slug is derived from Name
type Category struct {
	ID   string `json:"id" example:"0b6f3a1e-2c4d-4e5f-8a9b-0c1d2e3f4a5b"`
	Name string `json:"name" example:"Home & Kitchen"`
	Slug string `json:"slug" example:"home-kitchen"`
}

// ServicePort defines the service contract for categories
type ServicePort interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id string) (Category, error)
	Create(ctx context.Context, in CategoryInput) (Category, error)
	Update(ctx context.Context, id string, in CategoryInput) (Category, error)
	Delete(ctx context.Context, id string) error
}

// Resolver maps category names to ids, creating missing ones; used by catalog seeding
type Resolver interface {
	Ensure(ctx context.Context, name string) (Category, error)
}
