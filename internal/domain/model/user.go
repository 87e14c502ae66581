//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

// User represents a job-board account.
//
// Email is the external lookup key: the frontend probes GET /users?email=
// on sign-in to decide whether the account exists. Uniqueness of email is
// expected but not enforced by this layer.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty"       bson:"_id,omitempty"`
	Name      string             `json:"name"                bson:"name"`
	Email     string             `json:"email"               bson:"email"`
	Role      string             `json:"role"                bson:"role"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// CreateUserRequest represents parameters to create a User.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Validate checks that name, email, and role are all present.
func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.ValidationField("name", "name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if strings.TrimSpace(r.Role) == "" {
		return apperrors.ValidationField("role", "role is required")
	}
	return nil
}

// UpdateRoleRequest represents parameters for the role-update operation.
// Role is the only mutable user field exposed by the API.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// Validate checks that the new role is present.
func (r *UpdateRoleRequest) Validate() error {
	if strings.TrimSpace(r.Role) == "" {
		return apperrors.ValidationField("role", "role is required")
	}
	return nil
}
