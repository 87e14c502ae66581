// Package core defines the ports between the service layer and the data
// layer. Services depend on these interfaces, never on a concrete store,
// so the whole resource layer is testable against fakes.
package core

import (
	"context"

	"github.com/jobbox/jobbox-api/internal/domain/model"
)

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	// List returns all jobs in store order.
	List(ctx context.Context) ([]*model.Job, error)
	// ListPage returns the skip/limit window of the full listing.
	ListPage(ctx context.Context, skip, limit int) ([]*model.Job, error)
	// Count returns the total number of jobs.
	Count(ctx context.Context) (int64, error)
	// GetByID returns a single job by its identifier.
	GetByID(ctx context.Context, id string) (*model.Job, error)
	// ListByApplicantEmail returns jobs whose embedded applicant array
	// contains an entry with the exact email.
	ListByApplicantEmail(ctx context.Context, email string) ([]*model.Job, error)
	// Featured returns up to limit jobs ordered by postedTime descending.
	Featured(ctx context.Context, limit int) ([]*model.Job, error)
	// Create inserts the job and returns the inserted identifier.
	Create(ctx context.Context, job *model.Job) (string, error)
	// Delete removes a job by id. Returns false when nothing was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

// UserRepository defines the interface for user account data operations.
type UserRepository interface {
	List(ctx context.Context) ([]*model.User, error)
	// FindByEmail returns the user with the given email, or a NotFound
	// error when no account exists.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (string, error)
	// UpdateRole sets the role field only. Returns false when no document
	// was modified (unknown id or unchanged role; not distinguished).
	UpdateRole(ctx context.Context, id, role string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ApplicationRepository defines the interface for job application data operations.
type ApplicationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*model.AppliedJob, error)
	// FindByUserAndJob returns the application for the exact (userId, jobId)
	// pair, or a NotFound error when none exists.
	FindByUserAndJob(ctx context.Context, userID, jobID string) (*model.AppliedJob, error)
	// Create inserts the application. A (userId, jobId) pair that already
	// exists is rejected with a Conflict error by the unique index.
	Create(ctx context.Context, app *model.AppliedJob) (string, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SavedJobRepository defines the interface for saved-job bookmark data operations.
type SavedJobRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*model.SavedJob, error)
	FindByUserAndJob(ctx context.Context, userID, jobID string) (*model.SavedJob, error)
	// Create inserts the bookmark. A (userId, jobId) pair that already
	// exists is rejected with a Conflict error by the unique index.
	Create(ctx context.Context, saved *model.SavedJob) (string, error)
	Delete(ctx context.Context, id string) (bool, error)
}
