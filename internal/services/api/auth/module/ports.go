package module

import "storefront/internal/services/api/auth/domain"

// Ports are the capabilities the auth module consumes
type Ports struct {
	Users domain.Authenticator
}
