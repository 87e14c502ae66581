package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jobbox/jobbox-api/config"
	"github.com/jobbox/jobbox-api/internal/data"
)

// DatabaseConfig contains configuration for store connections.
type DatabaseConfig struct {
	MongoConfig config.MongoConfig
	RedisConfig config.RedisConfig
	Logger      *slog.Logger
}

// ConnectMongo establishes a connection to MongoDB, verifies it with a ping,
// and ensures the collection indexes exist (including the unique
// (userId, jobId) guard on applied and saved jobs).
func ConnectMongo(ctx context.Context, cfg DatabaseConfig) (*mongo.Database, error) {
	timeout := cfg.MongoConfig.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoConfig.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if pingErr := client.Ping(connectCtx, readpref.Primary()); pingErr != nil {
		if dErr := client.Disconnect(context.Background()); dErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("disconnect mongo: %w", dErr))
		}
		return nil, fmt.Errorf("ping mongo: %w", pingErr)
	}

	db := client.Database(cfg.MongoConfig.Database)

	if idxErr := data.EnsureIndexes(connectCtx, db); idxErr != nil {
		if dErr := client.Disconnect(context.Background()); dErr != nil {
			idxErr = errors.Join(idxErr, fmt.Errorf("disconnect mongo: %w", dErr))
		}
		return nil, fmt.Errorf("ensure indexes: %w", idxErr)
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("mongo connected",
			"host", mongoHost(cfg.MongoConfig.URI),
			"database", cfg.MongoConfig.Database,
		)
	}

	return db, nil
}

// mongoHost extracts the host list from a connection string, dropping the
// scheme, any credentials, and everything after the host. Connection strings
// carry passwords, so the raw URI must never reach the logs.
func mongoHost(uri string) string {
	rest := uri
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	if i := strings.IndexAny(rest, "/?"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.LastIndex(rest, "@"); i >= 0 {
		rest = rest[i+1:]
	}
	return rest
}

// DisconnectMongo tears down the client behind a connected database.
func DisconnectMongo(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return nil
	}
	return db.Client().Disconnect(ctx)
}

// ConnectRedis establishes a connection to Redis for the featured-jobs
// cache. Returns (nil, nil) when the cache is disabled by config; the API
// runs fine without it.
//
//nolint:ireturn // redis.UniversalClient keeps client selection flexible.
func ConnectRedis(ctx context.Context, cfg DatabaseConfig) (redis.UniversalClient, error) {
	if !cfg.RedisConfig.Enabled {
		if cfg.Logger != nil {
			cfg.Logger.Info("redis cache disabled via config")
		}
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConfig.Addr,
		Password: cfg.RedisConfig.Password,
		DB:       cfg.RedisConfig.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close redis: %w", cerr))
		}
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("redis connected", "addr", cfg.RedisConfig.Addr)
	}

	return client, nil
}
