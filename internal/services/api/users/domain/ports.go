package domain

import (
	"context"

	"storefront/internal/modkit/httpkit"
)

// ServicePort defines the service contract for users
type ServicePort interface {
	Register(ctx context.Context, in RegisterInput) (User, error)
	Get(ctx context.Context, caller httpkit.Principal, id string) (User, error)
	List(ctx context.Context, page, size int) (httpkit.Page[User], error)
	Update(ctx context.Context, caller httpkit.Principal, id string, in UpdateInput) (User, error)
	Delete(ctx context.Context, id string) error
}

// Authenticator checks credentials for the token endpoint
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (User, error)
}

// Provisioner creates accounts with explicit roles, used by the admin cli
type Provisioner interface {
	Create(ctx context.Context, in RegisterInput, roles ...string) (User, error)
}
