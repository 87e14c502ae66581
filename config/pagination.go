package config

// PaginationConfig contains guardrails for paginated listings.
type PaginationConfig struct {
	// MaxLimit caps the limit query param; larger values are clamped,
	// never rejected. Keeps a single request from dragging the whole
	// collection through the server.
	MaxLimit int `env:"PAGE_MAX_LIMIT" envDefault:"100"`
}

// Sanitize applies guardrails to pagination configuration values.
func (p *PaginationConfig) Sanitize() {
	if p.MaxLimit < 1 {
		p.MaxLimit = 100
	}
}
