package testkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "storefront/internal/platform/net"
)

func TestAsUser(t *testing.T) {
	r := AsUser(httptest.NewRequest(http.MethodGet, "/", nil), "u-1", "ADMIN")
	if pnet.UserID(r.Context()) != "u-1" || !pnet.HasRole(r.Context(), "ADMIN") {
		t.Fatalf("principal not attached")
	}
}

func TestDecode(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.WriteString(`{"status_code":200,"data":{"id":"p-1"}}`)

	var got struct{ ID string }
	env := Decode(t, rec, &got)
	if env.StatusCode != 200 || got.ID != "p-1" {
		t.Fatalf("env=%+v got=%+v", env, got)
	}
}

func TestSwapRestores(t *testing.T) {
	v := 1
	t.Run("swap", func(t *testing.T) {
		Swap(t, &v, 2)
		if v != 2 {
			t.Fatalf("swap not applied")
		}
	})
	if v != 1 {
		t.Fatalf("swap not restored")
	}
	MustPanic(t, func() { panic("x") })
	MustContain(t, "alpha beta", "beta")
}
