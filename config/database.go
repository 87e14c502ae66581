package config

import "time"

// MongoConfig contains MongoDB connection configuration.
type MongoConfig struct {
	// URI is the full connection string, e.g. "mongodb://localhost:27017".
	URI string `env:"URI"      envDefault:"mongodb://localhost:27017"`
	// Database is the database holding the job board collections.
	Database string `env:"DATABASE" envDefault:"jobbox"`
	// ConnectTimeout bounds the initial connect and ping.
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

// RedisConfig contains Redis connection configuration for the cache.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
	// Enabled controls whether the featured-jobs cache is wired at all.
	// When false the API runs without Redis.
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

// CacheConfig contains cache behavior configuration.
type CacheConfig struct {
	// FeaturedTTL is the TTL for the cached featured-jobs listing.
	FeaturedTTL time.Duration `env:"CACHE_FEATURED_TTL" envDefault:"5m"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.FeaturedTTL <= 0 {
		c.FeaturedTTL = 5 * time.Minute
	}
}
