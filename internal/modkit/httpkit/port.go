package httpkit

import "storefront/internal/platform/net/middleware"

// VerifyFunc adapts a plain function to middleware.AuthPort
type VerifyFunc func(token string) (userID string, roles []string, err error)

// Verify implements middleware.AuthPort
func (f VerifyFunc) Verify(token string) (string, []string, error) { return f(token) }

var _ middleware.AuthPort = VerifyFunc(nil)
