// Package pagination implements the page/limit offset paging used by every
// list endpoint. Page numbers are one-based; out-of-range pages yield empty
// result sets, never errors.
package pagination

import (
	"net/http"
	"strconv"

	"github.com/monastery360/api/internal/platform/httpx"
)

const (
	// DefaultLimit applies when the request omits or mangles the limit parameter.
	DefaultLimit = 10
	// MaxLimit caps client-supplied limits.
	MaxLimit = 100
)

// Params carries the validated paging inputs.
type Params struct {
	Page  int
	Limit int
}

// Option customises parsing bounds.
type Option func(*options)

type options struct {
	defaultLimit int
	maxLimit     int
}

// WithDefaultLimit overrides the fallback page size.
func WithDefaultLimit(limit int) Option {
	return func(o *options) {
		if limit > 0 {
			o.defaultLimit = limit
		}
	}
}

// WithMaxLimit overrides the page size cap.
func WithMaxLimit(limit int) Option {
	return func(o *options) {
		if limit > 0 {
			o.maxLimit = limit
		}
	}
}

// FromRequest parses page and limit query parameters, clamping invalid or
// hostile values to sane bounds.
func FromRequest(r *http.Request, opts ...Option) Params {
	o := options{defaultLimit: DefaultLimit, maxLimit: MaxLimit}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	params := Params{Page: 1, Limit: o.defaultLimit}
	if r == nil {
		return params
	}
	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.Page = page
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = limit
		}
	}
	if params.Limit > o.maxLimit {
		params.Limit = o.maxLimit
	}
	return params
}

// Meta builds the response pagination block for a total item count.
func (p Params) Meta(total int) httpx.Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return httpx.Pagination{Page: p.Page, Limit: p.Limit, Total: total, Pages: pages}
}

// Slice returns the half-open [start, end) range of the page within a
// collection of the given length.
func (p Params) Slice(total int) (int, int) {
	if p.Limit <= 0 || p.Page <= 0 {
		return 0, 0
	}
	start := (p.Page - 1) * p.Limit
	if start >= total {
		return total, total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}

// Apply pages through items, returning the window and its pagination block.
func Apply[T any](items []T, p Params) ([]T, httpx.Pagination) {
	start, end := p.Slice(len(items))
	return items[start:end], p.Meta(len(items))
}
