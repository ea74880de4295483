package httpkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "storefront/internal/platform/errors"
	phttp "storefront/internal/platform/net/http"
	kit "storefront/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipal(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := Caller(req)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnauthorized))

	p, err := Caller(kit.AsUser(req, "u-1", "CLIENT"))
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.UserID)
	assert.False(t, p.IsAdmin())
	assert.NoError(t, p.SelfOrAdmin("u-1"))
	assert.True(t, perr.IsCode(p.SelfOrAdmin("u-2"), perr.ErrorCodeForbidden))

	admin := Principal{UserID: "a-1", Roles: []string{"CLIENT", "ADMIN"}}
	assert.NoError(t, admin.SelfOrAdmin("u-2"))
	assert.True(t, perr.IsCode(Principal{}.SelfOrAdmin("u-2"), perr.ErrorCodeUnauthorized))
}

func newAPI() http.Handler {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	tokens := VerifyFunc(func(token string) (string, []string, error) {
		switch token {
		case "client":
			return "u-1", []string{"CLIENT"}, nil
		case "admin":
			return "a-1", []string{"ADMIN"}, nil
		}
		return "", nil, perr.Unauthorizedf("invalid token")
	})

	MountAPIV1(r, append(CommonStack(StackOptions{}), Auth(tokens)), func(api Router) {
		GetJSON(api, "/public", func(*http.Request) (any, error) { return "hi", nil })
		Protected(api, func(pr Router) {
			GetJSON(pr, "/me", func(r *http.Request) (any, error) { return User(r) })
		})
		Admin(api, func(ar Router) {
			DeleteJSON(ar, "/things/{id}", func(r *http.Request) (any, error) {
				if _, err := UUIDParam(r, "id"); err != nil {
					return nil, err
				}
				return nil, nil
			})
		})
	})
	return m
}

func call(h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMountedPolicies(t *testing.T) {
	t.Parallel()
	h := newAPI()
	const thing = "/api/v1/things/8f14e45f-ceea-467f-a0e6-1a2b3c4d5e6f"

	tests := []struct {
		method, path, token string
		want                int
	}{
		{http.MethodGet, "/api/v1/public", "", http.StatusOK},
		{http.MethodGet, "/api/v1/public", "garbage", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/me", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/me", "client", http.StatusOK},
		{http.MethodDelete, thing, "client", http.StatusForbidden},
		{http.MethodDelete, thing, "admin", http.StatusNoContent},
		{http.MethodDelete, "/api/v1/things/nope", "admin", http.StatusBadRequest},
		{http.MethodGet, "/public", "", http.StatusNotFound},
	}
	for _, tc := range tests {
		rec := call(h, tc.method, tc.path, tc.token)
		assert.Equalf(t, tc.want, rec.Code, "%s %s as %q: %s", tc.method, tc.path, tc.token, rec.Body.String())
	}

	rec := call(h, http.MethodGet, "/api/v1/me", "client")
	var uid string
	env := kit.Decode(t, rec, &uid)
	assert.Equal(t, "u-1", uid)
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestVerifyFunc(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := VerifyFunc(func(string) (string, []string, error) { return "", nil, boom })
	_, _, err := f.Verify("x")
	assert.ErrorIs(t, err, boom)
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	p := NewPage[string](nil, 2, 10, 0)
	assert.NotNil(t, p.Items)
	assert.Equal(t, 2, p.Page)
}
