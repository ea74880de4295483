// Package testkit holds helpers shared by handler, service and platform tests
package testkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pnet "storefront/internal/platform/net"
)

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustContain asserts that haystack contains needle, dumping haystack to a temp file when it does not
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		tmpfile := filepath.Join(t.TempDir(), "output.txt")
		_ = os.WriteFile(tmpfile, []byte(haystack), 0o600)
		t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, tmpfile)
	}
}

// AsUser returns r carrying an authenticated user, as the bearer middleware would set it
func AsUser(r *http.Request, userID string, roles ...string) *http.Request {
	return r.WithContext(pnet.WithUser(r.Context(), userID, roles))
}

// Envelope is the decoded reply envelope with data left raw for a second decode
type Envelope struct {
	StatusCode int             `json:"status_code"`
	Code       uint16          `json:"code"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

// Decode reads the envelope from rec and, when dst is non nil, its data into dst
func Decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v; body=%s", err, rec.Body.String())
	}
	if dst != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			t.Fatalf("decode data: %v; data=%s", err, env.Data)
		}
	}
	return env
}
