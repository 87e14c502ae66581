package httpx

import (
	"net/http"
	"strconv"
)

const (
	// DefaultPage is used when the page query param is absent or unusable.
	DefaultPage = 1
	// DefaultPageLimit is used when the limit query param is absent or unusable.
	DefaultPageLimit = 10
)

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// ParsePageLimit parses the page and limit pagination params and clamps them to
// sane bounds. Non-numeric or non-positive values silently fall back to the
// defaults rather than erroring, so stray characters in a URL never 400.
// - maxLimit: maximum allowed limit (values > maxLimit are clamped to maxLimit).
func ParsePageLimit(r *http.Request, maxLimit int) (page, limit int) {
	if maxLimit < 1 {
		maxLimit = 1
	}

	page = parseIntQuery(r, "page", DefaultPage)
	limit = parseIntQuery(r, "limit", DefaultPageLimit)
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
