package middleware

import (
	"net/http"
	"slices"
	"strings"

	perr "storefront/internal/platform/errors"
	"storefront/internal/platform/logger"
	pnet "storefront/internal/platform/net"
)

// AuthPort verifies a bearer token and returns the principal it names
type AuthPort interface {
	Verify(token string) (userID string, roles []string, err error)
}

// Writer writes an envelope; phttp.JSON satisfies it
type Writer func(w http.ResponseWriter, status int, body any)

func fail(w http.ResponseWriter, r *http.Request, write Writer, err error) {
	status, body := pnet.Error(err, pnet.RequestID(r.Context()))
	write(w, status, body)
}

// BearerToken extracts the token from "Authorization: Bearer <token>", "" when absent
func BearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Authenticate puts the bearer token's principal on the request context
// Requests without a token continue anonymously, a bad token is a 401
func Authenticate(p AuthPort, write Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if p == nil || token == "" {
				next.ServeHTTP(w, r)
				return
			}
			uid, roles, err := p.Verify(token)
			if err != nil {
				fail(w, r, write, err)
				return
			}
			recordUser(r.Context(), uid)
			ctx := pnet.WithUser(r.Context(), uid, roles)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser answers 401 unless Authenticate attached a user
func RequireUser(write Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if pnet.UserID(r.Context()) == "" {
				fail(w, r, write, perr.Unauthorizedf("authentication required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole answers 401 for anonymous callers and 403 unless the caller holds one of roles
func RequireRole(write Writer, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if pnet.UserID(ctx) == "" {
				fail(w, r, write, perr.Unauthorizedf("authentication required"))
				return
			}
			if !slices.ContainsFunc(roles, func(role string) bool { return pnet.HasRole(ctx, role) }) {
				fail(w, r, write, perr.Forbiddenf("requires role %s", strings.Join(roles, " or ")))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
