package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobbox/jobbox-api/internal/core"
	"github.com/jobbox/jobbox-api/internal/domain/model"
	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

// UserService orchestrates user account operations.
type UserService struct {
	users core.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(users core.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns all users. Unlike jobs, an empty listing is a plain empty
// success.
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.users.List(ctx)
}

// LookupByEmail returns the user with the given email, or (nil, nil) when
// no account exists. The nil result is a deliberate non-error: the caller
// uses it to detect first-time sign-in, so it must not surface as NotFound.
func (s *UserService) LookupByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetByEmail returns the user with the given email, or a NotFound error.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// Create validates and inserts a new user, returning it with the assigned id.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user := &model.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.WriteRejected("user insert returned an unusable identifier")
	}
	user.ID = oid
	return user, nil
}

// UpdateRole sets a user's role. A zero-modified outcome is NotFound;
// an unknown id and an unchanged role are not distinguished.
func (s *UserService) UpdateRole(ctx context.Context, id string, req *model.UpdateRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	modified, err := s.users.UpdateRole(ctx, id, req.Role)
	if err != nil {
		return err
	}
	if !modified {
		return apperrors.NotFound("user not found or role unchanged")
	}
	return nil
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	ok, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("user not found")
	}
	return nil
}
