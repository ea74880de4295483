package module

import "storefront/internal/services/api/users/domain"

// Ports are the users capabilities other modules may depend on
type Ports struct {
	Authenticator domain.Authenticator
	Provisioner   domain.Provisioner
}
