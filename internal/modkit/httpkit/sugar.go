package httpkit

import (
	"net/http"

	phttp "storefront/internal/platform/net/http"
)

// GetJSON mounts a GET handler answering 200
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) { phttp.GetJSON(r, path, h) }

// DeleteJSON mounts a DELETE handler answering 204
func DeleteJSON(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.DeleteJSON(r, path, h)
}

// ActionJSON mounts a bodiless POST answering 200
func ActionJSON(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.ActionJSON(r, path, h)
}

// PostJSON mounts a POST handler with a validated body answering 200
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// CreateJSON mounts a POST handler with a validated body answering 201
func CreateJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.CreateJSON(r, path, h)
}

// PutJSON mounts a PUT handler with a validated body
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PutJSON(r, path, h)
}

// PatchJSON mounts a PATCH handler with a validated body
func PatchJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PatchJSON(r, path, h)
}
