// Package devseed populates an empty development database with sample
// jobs and users so the API has something to serve out of the box.
package devseed

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobbox/jobbox-api/internal/domain/model"
	apperrors "github.com/jobbox/jobbox-api/internal/errors"
	"github.com/jobbox/jobbox-api/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	Jobs   *service.JobService
	Users  *service.UserService
	Logger *slog.Logger
}

// Run seeds sample data. It is idempotent: collections that already hold
// documents are left untouched, so restarting a dev server never duplicates.
func Run(ctx context.Context, svcs Services) error {
	logger := svcs.Logger
	if logger == nil {
		logger = slog.Default()
	}

	failures := 0
	failures += seedJobs(ctx, svcs.Jobs, logger)
	failures += seedUsers(ctx, svcs.Users, logger)

	if failures > 0 {
		logger.WarnContext(ctx, "dev seeding finished with failures", "failures", failures)
	} else {
		logger.InfoContext(ctx, "dev seeding finished")
	}
	return nil
}

func seedJobs(ctx context.Context, svc *service.JobService, logger *slog.Logger) int {
	if _, err := svc.List(ctx); err == nil {
		logger.InfoContext(ctx, "jobs already present, skipping seed")
		return 0
	} else if !apperrors.IsNotFound(err) {
		logger.WarnContext(ctx, "could not check jobs collection", "error", err)
		return 1
	}

	failures := 0
	for _, job := range defaultJobs() {
		if _, err := svc.Create(ctx, job); err != nil {
			logger.WarnContext(ctx, "seed job failed", "company", job.Company, "error", err)
			failures++
		}
	}
	logger.InfoContext(ctx, "seeded sample jobs", "count", len(defaultJobs())-failures)
	return failures
}

func seedUsers(ctx context.Context, svc *service.UserService, logger *slog.Logger) int {
	existing, err := svc.List(ctx)
	if err != nil {
		logger.WarnContext(ctx, "could not check users collection", "error", err)
		return 1
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "users already present, skipping seed")
		return 0
	}

	failures := 0
	for _, req := range defaultUsers() {
		if _, cerr := svc.Create(ctx, req); cerr != nil {
			logger.WarnContext(ctx, "seed user failed", "email", req.Email, "error", cerr)
			failures++
		}
	}
	logger.InfoContext(ctx, "seeded sample users", "count", len(defaultUsers())-failures)
	return failures
}

func defaultJobs() []*model.Job {
	now := time.Now().UTC()
	return []*model.Job{
		{
			Company:     "Acme Robotics",
			Position:    "Backend Engineer",
			Category:    "engineering",
			Location:    "Remote",
			Salary:      "120k-150k",
			Description: "Build the services behind our fulfillment fleet.",
			PostedTime:  now.Add(-2 * time.Hour),
		},
		{
			Company:     "Globex",
			Position:    "Product Designer",
			Category:    "design",
			Location:    "Berlin",
			Salary:      "80k-95k",
			Description: "Own the design system end to end.",
			PostedTime:  now.Add(-26 * time.Hour),
		},
		{
			Company:     "Initech",
			Position:    "Data Analyst",
			Category:    "data",
			Location:    "Austin, TX",
			Salary:      "90k-110k",
			Description: "Turn warehouse tables into decisions.",
			PostedTime:  now.Add(-3 * 24 * time.Hour),
		},
	}
}

func defaultUsers() []*model.CreateUserRequest {
	return []*model.CreateUserRequest{
		{Name: "Dev Admin", Email: "admin@jobbox.local", Role: "admin"},
		{Name: "Dev Seeker", Email: "seeker@jobbox.local", Role: "seeker"},
	}
}
