// Package httpkit is the HTTP surface modules build on; it re-exports the platform http seam
// so modules do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	pnet "storefront/internal/platform/net"
	phttp "storefront/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope
	// Response is the HTTP response type
	Response = phttp.Response
	// Handler is the platform handler type
	Handler = phttp.Handler
	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// Page is the list payload
type Page[T any] = pnet.Page[T]

// NewPage builds a list payload with a non nil items slice
func NewPage[T any](items []T, page, size, total int) Page[T] {
	return pnet.NewPage(items, page, size, total)
}

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Paging reads page and size query params
func Paging(r *http.Request) (page, size int, err error) { return phttp.Paging(r) }

// URLParam returns a chi route param
func URLParam(r *http.Request, name string) string { return phttp.URLParam(r, name) }

// UUIDParam returns a chi route param parsed as a uuid, 400 when malformed
func UUIDParam(r *http.Request, name string) (string, error) {
	id, err := phttp.UUIDParam(r, name)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Query returns a trimmed query param
func Query(r *http.Request, name string) string { return phttp.QueryString(r, name) }
