package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/jobbox/jobbox-api/internal/domain/model"
	apperrors "github.com/jobbox/jobbox-api/internal/errors"
	"github.com/jobbox/jobbox-api/internal/mocks"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	return NewUserService(repo), repo
}

func TestUserService_LookupByEmail_Found(t *testing.T) {
	svc, repo := newUserService(t)

	expected := &model.User{ID: primitive.NewObjectID(), Email: "a@x.com"}
	repo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(expected, nil)

	got, err := svc.LookupByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

// A missing account is (nil, nil), not an error: the caller uses the nil
// result to detect first-time sign-in.
func TestUserService_LookupByEmail_AbsentIsNilSuccess(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().
		FindByEmail(gomock.Any(), "new@x.com").
		Return(nil, apperrors.NotFound("user not found"))

	got, err := svc.LookupByEmail(context.Background(), "new@x.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserService_LookupByEmail_StoreFailurePropagates(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().
		FindByEmail(gomock.Any(), "a@x.com").
		Return(nil, apperrors.Internal("store unreachable"))

	_, err := svc.LookupByEmail(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
}

func TestUserService_GetByEmail_AbsentIsNotFound(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().
		FindByEmail(gomock.Any(), "a@x.com").
		Return(nil, apperrors.NotFound("user not found"))

	_, err := svc.GetByEmail(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserService_Create(t *testing.T) {
	svc, repo := newUserService(t)

	id := primitive.NewObjectID()
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id.Hex(), nil)

	user, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Name: "A", Email: "a@x.com", Role: "user",
	})
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "user", user.Role)
}

// Missing role must fail validation before any store call; the mock has no
// Create expectation, so a write would fail the test.
func TestUserService_Create_MissingRole(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Name: "A", Email: "a@x.com",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "role", apperrors.GetField(err))
}

func TestUserService_UpdateRole(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().UpdateRole(gomock.Any(), "id1", "admin").Return(true, nil)

	err := svc.UpdateRole(context.Background(), "id1", &model.UpdateRoleRequest{Role: "admin"})
	require.NoError(t, err)
}

func TestUserService_UpdateRole_ZeroModifiedIsNotFound(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().UpdateRole(gomock.Any(), "id1", "admin").Return(false, nil)

	err := svc.UpdateRole(context.Background(), "id1", &model.UpdateRoleRequest{Role: "admin"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Delete(gomock.Any(), "id1").Return(false, nil)

	err := svc.Delete(context.Background(), "id1")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
