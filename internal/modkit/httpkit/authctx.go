package httpkit

import (
	"net/http"
	"slices"

	"storefront/internal/platform/auth"
	perr "storefront/internal/platform/errors"
	pnet "storefront/internal/platform/net"
)

// Principal is the caller as seen by services
type Principal struct {
	UserID string
	Roles  []string
}

// IsAdmin reports whether the caller holds the ADMIN role
func (p Principal) IsAdmin() bool {
	return slices.Contains(p.Roles, auth.RoleAdmin)
}

// SelfOrAdmin allows admins and the owner of the resource
func (p Principal) SelfOrAdmin(ownerID string) error {
	if p.UserID == "" {
		return perr.Unauthorizedf("authentication required")
	}
	if p.UserID == ownerID || p.IsAdmin() {
		return nil
	}
	return perr.Forbiddenf("access denied")
}

// Caller returns the principal attached by the bearer middleware; anonymous callers get a 401
func Caller(r *http.Request) (Principal, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return Principal{}, perr.Unauthorizedf("authentication required")
	}
	return Principal{UserID: uid, Roles: pnet.Roles(r.Context())}, nil
}

// User returns the authenticated user id
func User(r *http.Request) (string, error) {
	p, err := Caller(r)
	return p.UserID, err
}
