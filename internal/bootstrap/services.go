package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobbox/jobbox-api/config"
	"github.com/jobbox/jobbox-api/internal/core"
	"github.com/jobbox/jobbox-api/internal/data"
	"github.com/jobbox/jobbox-api/internal/service"
)

// ServiceContainer holds the constructed resource services.
type ServiceContainer struct {
	Jobs         *service.JobService
	Users        *service.UserService
	Applications *service.ApplicationService
	SavedJobs    *service.SavedJobService
}

// ServiceDeps contains dependencies for service construction.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *mongo.Database
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices constructs the service layer on top of the Mongo repositories,
// with the Redis-backed featured cache when a client is available.
func NewServices(deps *ServiceDeps) ServiceContainer {
	var cache core.CacheRepository
	if deps.RedisClient != nil {
		cache = data.NewRedisCacheRepo(deps.RedisClient)
	}

	return ServiceContainer{
		Jobs: service.NewJobService(service.JobServiceOptions{
			Jobs:     data.NewJobRepo(deps.DB),
			Cache:    cache,
			CacheTTL: deps.Config.Cache.FeaturedTTL,
			Logger:   deps.Logger,
		}),
		Users:        service.NewUserService(data.NewUserRepo(deps.DB)),
		Applications: service.NewApplicationService(data.NewApplicationRepo(deps.DB)),
		SavedJobs:    service.NewSavedJobService(data.NewSavedJobRepo(deps.DB)),
	}
}
