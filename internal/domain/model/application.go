//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

// AppliedJob records a user's application to a job.
//
// userId and jobId are weak references: they are lookup keys only and no
// referential integrity is enforced against the users or jobs collections.
// At most one AppliedJob may exist per (userId, jobId) pair; the pair is
// backed by a unique compound index.
type AppliedJob struct {
	ID          primitive.ObjectID `json:"_id,omitempty"         bson:"_id,omitempty"`
	UserID      string             `json:"userId"                bson:"userId"`
	JobID       string             `json:"jobId"                 bson:"jobId"`
	JobCompany  string             `json:"jobCompany,omitempty"  bson:"jobCompany,omitempty"`
	JobPosition string             `json:"jobPosition,omitempty" bson:"jobPosition,omitempty"`
	FullName    string             `json:"fullName,omitempty"    bson:"fullName,omitempty"`
	Email       string             `json:"email,omitempty"       bson:"email,omitempty"`
	Phone       string             `json:"phone,omitempty"       bson:"phone,omitempty"`
	Resume      string             `json:"resume,omitempty"      bson:"resume,omitempty"`
	CoverLetter string             `json:"coverLetter,omitempty" bson:"coverLetter,omitempty"`
	AppliedAt   time.Time          `json:"appliedAt"             bson:"appliedAt"`
}

// ApplyRequest represents parameters to apply to a job.
// appliedAt is server-set and never taken from the request.
type ApplyRequest struct {
	UserID      string `json:"userId"`
	JobID       string `json:"jobId"`
	JobCompany  string `json:"jobCompany,omitempty"`
	JobPosition string `json:"jobPosition,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Resume      string `json:"resume,omitempty"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

// Validate checks that userId and jobId are present. The apply path does
// not check the userId identifier format; the save path does.
func (r *ApplyRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return apperrors.ValidationField("userId", "userId is required")
	}
	if strings.TrimSpace(r.JobID) == "" {
		return apperrors.ValidationField("jobId", "jobId is required")
	}
	return nil
}
