package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	perr "storefront/internal/platform/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Paging defaults for list endpoints
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// URLParam returns the named route parameter
func URLParam(r *stdhttp.Request, name string) string {
	return chi.URLParam(r, name)
}

// UUIDParam parses the named route parameter as a uuid, 400 when it is not one
func UUIDParam(r *stdhttp.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be a uuid, got '%s'", name, raw), name)
	}
	return id, nil
}

// QueryString returns the trimmed query value
func QueryString(r *stdhttp.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// QueryInt parses an optional integer query value, def when absent
func QueryInt(r *stdhttp.Request, name string, def int) (int, error) {
	s := QueryString(r, name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be an integer", name), name)
	}
	return n, nil
}

// Paging reads page (1 based) and size, clamping size to MaxPageSize
func Paging(r *stdhttp.Request) (page, size int, err error) {
	if page, err = QueryInt(r, "page", 1); err != nil {
		return 0, 0, err
	}
	if size, err = QueryInt(r, "size", DefaultPageSize); err != nil {
		return 0, 0, err
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size, nil
}
