package module

import "storefront/internal/services/api/categories/domain"

// Ports are the categories capabilities other modules may depend on
type Ports struct {
	Resolver domain.Resolver
}
