package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeDuplicateKey:    http.StatusConflict,
		ErrorCodeConflict:        http.StatusConflict,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeForbidden:       http.StatusForbidden,
		ErrorCodeUnavailable:     http.StatusServiceUnavailable,
		ErrorCodeDB:              http.StatusInternalServerError,
		9999:                     http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatusCode(code); got != want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", code, got, want)
		}
	}
}

func TestWrapAndInspect(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q", nilErr.Error())
	}

	src := stderrs.New("connection reset")
	e := Wrapf(src, ErrorCodeDB, "insert order %s", "o-1")
	if e.Error() != "insert order o-1: connection reset" {
		t.Fatalf("Error() = %q", e.Error())
	}
	if !stderrs.Is(e, src) || Root(e) != src {
		t.Fatalf("cause lost")
	}
	if !IsCode(e, ErrorCodeDB) || HTTPStatus(e) != http.StatusInternalServerError {
		t.Fatalf("code mapping lost")
	}

	tagged := WithOp(WithField(e, "items"), "orders.place")
	pe, ok := As(tagged)
	if !ok || pe.Field() != "items" || pe.Op() != "orders.place" {
		t.Fatalf("field/op not attached: %+v", pe)
	}
	if orig, _ := As(e); orig.Field() != "" {
		t.Fatalf("WithField mutated the original")
	}

	if WithField(src, "x") != src {
		t.Fatalf("foreign errors must pass through")
	}
	if CodeOf(src) != ErrorCodeUnknown || WireFrom(src).Message != "connection reset" {
		t.Fatalf("foreign error wire mapping")
	}
	if WireFrom(nil) != (Wire{}) {
		t.Fatalf("nil wire")
	}
}

func TestInvalidFormat(t *testing.T) {
	cause := stderrs.New("bad")
	err := InvalidFormat(cause, "price", "abc", "invalid numeric format")
	w := WireFrom(err)
	if w.Code != ErrorCodeJSON || w.Field != "price" {
		t.Fatalf("wire = %+v", w)
	}
	want := "invalid format for field price, value was 'abc', reason 'invalid numeric format'"
	if w.Message != want {
		t.Fatalf("message = %q, want %q", w.Message, want)
	}
	if HTTPStatus(err) != http.StatusBadRequest || !stderrs.Is(err, cause) {
		t.Fatalf("status or cause")
	}
}
