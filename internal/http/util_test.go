package httpx

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageLimit(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		maxLimit  int
		wantPage  int
		wantLimit int
	}{
		{"defaults when absent", "/jobs-by-pagination", 100, 1, 10},
		{"explicit values", "/jobs-by-pagination?page=3&limit=25", 100, 3, 25},
		{"non-numeric falls back", "/jobs-by-pagination?page=abc&limit=xyz", 100, 1, 10},
		{"zero and negative fall back", "/jobs-by-pagination?page=0&limit=-4", 100, 1, 10},
		{"limit clamped to max", "/jobs-by-pagination?limit=5000", 100, 1, 100},
		{"degenerate max still positive", "/jobs-by-pagination?limit=5", 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			page, limit := ParsePageLimit(r, tt.maxLimit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
