// Package service implements the resource operations over the core
// repository ports: listing, pagination, the apply/save dedup guard, and
// the featured-jobs cache.
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobbox/jobbox-api/internal/core"
	"github.com/jobbox/jobbox-api/internal/domain/model"
	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

const featuredJobsCacheKey = "featured-jobs"

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Jobs core.JobRepository
	// Cache is optional; when nil the featured listing always hits the store.
	Cache    core.CacheRepository
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// JobService orchestrates job posting operations.
type JobService struct {
	jobs     core.JobRepository
	cache    core.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &JobService{
		jobs:     opts.Jobs,
		cache:    opts.Cache,
		cacheTTL: ttl,
		logger:   logger,
	}
}

// List returns all jobs. An empty collection is a NotFound outcome, not an
// empty success.
func (s *JobService) List(ctx context.Context) ([]*model.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, apperrors.NotFound("no jobs found")
	}
	return jobs, nil
}

// ListPaginated returns the requested page window plus its summary.
// page and limit are assumed normalized by the caller (positive, clamped).
func (s *JobService) ListPaginated(ctx context.Context, page, limit int) (*model.JobPage, error) {
	skip := (page - 1) * limit

	total, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.ListPage(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, apperrors.NotFound("no jobs found on this page")
	}

	return &model.JobPage{
		Jobs:       jobs,
		Pagination: model.NewPageInfo(page, limit, total),
	}, nil
}

// GetByID returns a single job.
func (s *JobService) GetByID(ctx context.Context, id string) (*model.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// ListByApplicantEmail returns jobs the given applicant email appears in.
func (s *JobService) ListByApplicantEmail(ctx context.Context, email string) ([]*model.Job, error) {
	jobs, err := s.jobs.ListByApplicantEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, apperrors.NotFoundf("no jobs found for applicant %s", email)
	}
	return jobs, nil
}

// Featured returns the most recently posted jobs, at most
// model.FeaturedJobsLimit of them, newest first. The hot window is cached.
func (s *JobService) Featured(ctx context.Context) ([]*model.Job, error) {
	if jobs := s.featuredFromCache(ctx); jobs != nil {
		return jobs, nil
	}

	jobs, err := s.jobs.Featured(ctx, model.FeaturedJobsLimit)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, apperrors.NotFound("no featured jobs found")
	}

	s.cacheFeatured(ctx, jobs)
	return jobs, nil
}

// Create inserts the payload verbatim as a new job and returns it with the
// assigned id. No field validation happens here; the posting schema is open.
func (s *JobService) Create(ctx context.Context, job *model.Job) (*model.Job, error) {
	if job.PostedTime.IsZero() {
		job.PostedTime = time.Now().UTC()
	}

	id, err := s.jobs.Create(ctx, job)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.WriteRejected("job insert returned an unusable identifier")
	}
	job.ID = oid

	s.invalidateFeatured(ctx)
	return job, nil
}

// Delete removes a job by id.
func (s *JobService) Delete(ctx context.Context, id string) error {
	ok, err := s.jobs.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("job not found")
	}

	s.invalidateFeatured(ctx)
	return nil
}

// featuredFromCache returns the cached featured window, or nil on any miss
// or cache failure. Cache failures never fail the request.
func (s *JobService) featuredFromCache(ctx context.Context) []*model.Job {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, featuredJobsCacheKey)
	if err != nil {
		s.logger.WarnContext(ctx, "featured jobs cache read failed", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}
	var jobs []*model.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		s.logger.WarnContext(ctx, "featured jobs cache entry corrupt", "error", err)
		return nil
	}
	if len(jobs) == 0 {
		return nil
	}
	return jobs
}

func (s *JobService) cacheFeatured(ctx context.Context, jobs []*model.Job) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(jobs)
	if err != nil {
		s.logger.WarnContext(ctx, "featured jobs cache encode failed", "error", err)
		return
	}
	if err := s.cache.Set(ctx, featuredJobsCacheKey, raw, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "featured jobs cache write failed", "error", err)
	}
}

func (s *JobService) invalidateFeatured(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Delete(ctx, featuredJobsCacheKey); err != nil {
		s.logger.WarnContext(ctx, "featured jobs cache invalidation failed", "error", err)
	}
}
