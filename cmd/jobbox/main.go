// Command jobbox runs the job board REST API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jobbox/jobbox-api/internal/bootstrap"
	"github.com/jobbox/jobbox-api/internal/devseed"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.IsDev {
		logger = bootstrap.InitDevLogger()
	}

	logger.InfoContext(ctx, "starting jobbox service",
		"mongo_database", cfg.Mongo.Database,
		"http_addr", cfg.HTTP.Addr,
		"redis_enabled", cfg.Redis.Enabled,
	)

	db, err := bootstrap.ConnectMongo(ctx, bootstrap.DatabaseConfig{
		MongoConfig: cfg.Mongo,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := bootstrap.DisconnectMongo(context.Background(), db); cerr != nil {
			logger.ErrorContext(ctx, "disconnect mongo failed", "error", cerr)
		}
	}()

	redisClient, err := bootstrap.ConnectRedis(ctx, bootstrap.DatabaseConfig{
		RedisConfig: cfg.Redis,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	services := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config:      &cfg,
		DB:          db,
		RedisClient: redisClient,
		Logger:      logger,
	})

	if cfg.IsDev {
		if seedErr := devseed.Run(ctx, devseed.Services{
			Jobs:   services.Jobs,
			Users:  services.Users,
			Logger: logger,
		}); seedErr != nil {
			return seedErr
		}
	}

	server := bootstrap.NewHTTPServer(&bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})

	return bootstrap.RunHTTPServer(ctx, server, &cfg, logger)
}
