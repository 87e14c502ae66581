package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobbox/jobbox-api/internal/core"
	"github.com/jobbox/jobbox-api/internal/domain/model"
	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

// ApplicationService orchestrates job applications, including the
// at-most-one-per-(userId, jobId) dedup guard.
type ApplicationService struct {
	apps core.ApplicationRepository
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(apps core.ApplicationRepository) *ApplicationService {
	return &ApplicationService{apps: apps}
}

// ListByUser returns all applications filed by the given user.
// userID must be a well-formed store identifier.
func (s *ApplicationService) ListByUser(ctx context.Context, userID string) ([]*model.AppliedJob, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, apperrors.ValidationField("userId", "userId is not a valid identifier")
	}

	apps, err := s.apps.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, apperrors.NotFound("no applied jobs found for this user")
	}
	return apps, nil
}

// Apply files an application for (userId, jobId).
//
// The guard runs in two layers: a find-one pre-check for the common case,
// and the store's unique compound index for the race where two concurrent
// applies both pass the pre-check. Either way the caller sees Conflict and
// the store ends up with at most one record for the pair.
func (s *ApplicationService) Apply(ctx context.Context, req *model.ApplyRequest) (*model.AppliedJob, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.apps.FindByUserAndJob(ctx, req.UserID, req.JobID)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("you have already applied to this job")
	}

	app := &model.AppliedJob{
		UserID:      req.UserID,
		JobID:       req.JobID,
		JobCompany:  req.JobCompany,
		JobPosition: req.JobPosition,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	}
	id, err := s.apps.Create(ctx, app)
	if err != nil {
		if apperrors.IsConflict(err) {
			return nil, apperrors.Conflict("you have already applied to this job")
		}
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.WriteRejected("application insert returned an unusable identifier")
	}
	app.ID = oid
	return app, nil
}

// Withdraw removes an application by id.
func (s *ApplicationService) Withdraw(ctx context.Context, id string) error {
	ok, err := s.apps.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("application not found")
	}
	return nil
}
