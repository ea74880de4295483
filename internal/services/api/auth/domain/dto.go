// Package domain holds DTOs for the token endpoint
package domain

import (
	"context"

	"storefront/internal/platform/auth"
	usersdom "storefront/internal/services/api/users/domain"
)

// TokenInput is the password grant
type TokenInput struct {
	Email    string `json:"email" validate:"required,email" example:"maria@example.com"`
	Password string `json:"password" validate:"required,max=72" example:"S3cret!pass"`
}

// Token is the issued bearer token
type Token = auth.Token

// ServicePort defines the service contract for tokens
type ServicePort interface {
	Token(ctx context.Context, in TokenInput) (Token, error)
}

// Authenticator is the users capability this module needs
type Authenticator = usersdom.Authenticator
