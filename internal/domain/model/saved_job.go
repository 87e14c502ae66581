//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

// SavedJob records a user's bookmark of a job, with a denormalized
// snapshot of the job fields at save time. At most one SavedJob may exist
// per (userId, jobId) pair; the pair is backed by a unique compound index.
type SavedJob struct {
	ID          primitive.ObjectID `json:"_id,omitempty"         bson:"_id,omitempty"`
	UserID      string             `json:"userId"                bson:"userId"`
	JobID       string             `json:"jobId"                 bson:"jobId"`
	JobCategory string             `json:"jobCategory,omitempty" bson:"jobCategory,omitempty"`
	JobCompany  string             `json:"jobCompany,omitempty"  bson:"jobCompany,omitempty"`
	JobLogo     string             `json:"jobLogo,omitempty"     bson:"jobLogo,omitempty"`
	JobLocation string             `json:"jobLocation,omitempty" bson:"jobLocation,omitempty"`
	JobPosition string             `json:"jobPosition,omitempty" bson:"jobPosition,omitempty"`
	SavedAt     time.Time          `json:"savedAt,omitempty"     bson:"savedAt,omitempty"`
}

// SaveJobRequest represents parameters to bookmark a job.
type SaveJobRequest struct {
	UserID      string `json:"userId"`
	JobID       string `json:"jobId"`
	JobCategory string `json:"jobCategory,omitempty"`
	JobCompany  string `json:"jobCompany,omitempty"`
	JobLogo     string `json:"jobLogo,omitempty"`
	JobLocation string `json:"jobLocation,omitempty"`
	JobPosition string `json:"jobPosition,omitempty"`
}

// Validate checks that userId is a well-formed store identifier and that
// jobId is present. jobId is deliberately not format-checked, matching the
// asymmetry between the save and apply paths.
func (r *SaveJobRequest) Validate() error {
	userID := strings.TrimSpace(r.UserID)
	if userID == "" {
		return apperrors.ValidationField("userId", "userId is required")
	}
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return apperrors.ValidationField("userId", "userId is not a valid identifier")
	}
	if strings.TrimSpace(r.JobID) == "" {
		return apperrors.ValidationField("jobId", "jobId is required")
	}
	return nil
}
