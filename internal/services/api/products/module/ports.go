package module

import "storefront/internal/services/api/products/domain"

// Ports are the products capabilities other modules may depend on
type Ports struct {
	Creator domain.Creator
}
