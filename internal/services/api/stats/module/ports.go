package module

import "storefront/internal/services/api/stats/domain"

// Ports exposes stats queries to other modules and the ctl
type Ports struct {
	Stats domain.ServicePort
}
