package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobbox/jobbox-api/internal/core"
	"github.com/jobbox/jobbox-api/internal/domain/model"
	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

// SavedJobService orchestrates saved-job bookmarks with the same dedup
// guard as applications.
type SavedJobService struct {
	saved core.SavedJobRepository
}

// NewSavedJobService constructs a new SavedJobService.
func NewSavedJobService(saved core.SavedJobRepository) *SavedJobService {
	return &SavedJobService{saved: saved}
}

// ListByUser returns all bookmarks held by the given user.
// userID must be a well-formed store identifier.
func (s *SavedJobService) ListByUser(ctx context.Context, userID string) ([]*model.SavedJob, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, apperrors.ValidationField("userId", "userId is not a valid identifier")
	}

	saved, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(saved) == 0 {
		return nil, apperrors.NotFound("no saved jobs found for this user")
	}
	return saved, nil
}

// Save bookmarks a job for (userId, jobId). Same two-layer guard as
// ApplicationService.Apply: find-one pre-check plus the unique index for
// the concurrent case.
func (s *SavedJobService) Save(ctx context.Context, req *model.SaveJobRequest) (*model.SavedJob, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.saved.FindByUserAndJob(ctx, req.UserID, req.JobID)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("you have already saved this job")
	}

	saved := &model.SavedJob{
		UserID:      req.UserID,
		JobID:       req.JobID,
		JobCategory: req.JobCategory,
		JobCompany:  req.JobCompany,
		JobLogo:     req.JobLogo,
		JobLocation: req.JobLocation,
		JobPosition: req.JobPosition,
	}
	id, err := s.saved.Create(ctx, saved)
	if err != nil {
		if apperrors.IsConflict(err) {
			return nil, apperrors.Conflict("you have already saved this job")
		}
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.WriteRejected("saved job insert returned an unusable identifier")
	}
	saved.ID = oid
	return saved, nil
}

// Unsave removes a bookmark by id.
func (s *SavedJobService) Unsave(ctx context.Context, id string) error {
	ok, err := s.saved.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("saved job not found")
	}
	return nil
}
