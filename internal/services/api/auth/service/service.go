// Package service issues access tokens for valid credentials
package service

import (
	"context"

	"storefront/internal/platform/auth"
	"storefront/internal/platform/logger"
	"storefront/internal/services/api/auth/domain"
)

// Service defines the service contract for tokens
type Service interface{ domain.ServicePort }

// Issuer signs tokens for a user
type Issuer interface {
	Issue(userID, email string, roles []string) (auth.Token, error)
}

// Svc implements the Service interface
type Svc struct {
	users  domain.Authenticator
	tokens Issuer
}

// New creates a token service
func New(users domain.Authenticator, tokens Issuer) *Svc {
	if users == nil {
		panic("auth.Service requires a non nil Authenticator")
	}
	if tokens == nil {
		panic("auth.Service requires a non nil Issuer")
	}
	return &Svc{users: users, tokens: tokens}
}

// Token checks the credentials and issues a bearer token carrying the user's roles
func (s *Svc) Token(ctx context.Context, in domain.TokenInput) (domain.Token, error) {
	u, err := s.users.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		logger.C(ctx).Debug().Err(err).Msg("token denied")
		return domain.Token{}, err
	}
	tok, err := s.tokens.Issue(u.ID, u.Email, u.Roles)
	if err != nil {
		return domain.Token{}, err
	}
	logger.C(ctx).Info().Str("user_id", u.ID).Msg("token issued")
	return tok, nil
}
