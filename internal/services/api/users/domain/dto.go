// Package domain holds DTOs for users http and service contracts
package domain

import (
	"time"

	"storefront/internal/core/flexdate"
)

// RegisterInput is the public sign up payload
type RegisterInput struct {
	Name      string        `json:"name" validate:"required,min=2,max=80" example:"Maria Brown"`
	Email     string        `json:"email" validate:"required,email,max=254" example:"maria@example.com"`
	Password  string        `json:"password" validate:"required,strong_password" example:"S3cret!pass"`
	Phone     string        `json:"phone,omitempty" validate:"omitempty,min=8,max=20,printascii" example:"+55 11 98888-8888"`
	BirthDate flexdate.Date `json:"birth_date,omitempty" swaggertype:"string" example:"21/03/1990"`
}

// UpdateInput replaces the editable profile fields
type UpdateInput struct {
	Name      string        `json:"name" validate:"required,min=2,max=80" example:"Maria Brown"`
	Phone     string        `json:"phone,omitempty" validate:"omitempty,min=8,max=20,printascii" example:"+55 11 98888-8888"`
	BirthDate flexdate.Date `json:"birth_date,omitempty" swaggertype:"string" example:"1990-03-21"`
}

// User is the public view of an account; the password hash never leaves the repo
type User struct {
	ID        string         `json:"id" example:"3f1c2d4e-5a6b-4c7d-8e9f-0a1b2c3d4e5f"`
	Name      string         `json:"name" example:"Maria Brown"`
	Email     string         `json:"email" example:"maria@example.com"`
	Phone     string         `json:"phone,omitempty"`
	BirthDate *flexdate.Date `json:"birth_date,omitempty" swaggertype:"string" example:"1990-03-21"`
	Roles     []string       `json:"roles" example:"CLIENT"`
	CreatedAt time.Time      `json:"created_at"`
}

// HasRole reports whether the user holds role
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
