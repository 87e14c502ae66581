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

func newSavedJobService(t *testing.T) (*SavedJobService, *mocks.MockSavedJobRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSavedJobRepository(ctrl)
	return NewSavedJobService(repo), repo
}

func TestSavedJobService_Save(t *testing.T) {
	svc, repo := newSavedJobService(t)

	userID := primitive.NewObjectID().Hex()
	id := primitive.NewObjectID()
	repo.EXPECT().
		FindByUserAndJob(gomock.Any(), userID, "j1").
		Return(nil, apperrors.NotFound("saved job not found"))
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id.Hex(), nil)

	saved, err := svc.Save(context.Background(), &model.SaveJobRequest{
		UserID:     userID,
		JobID:      "j1",
		JobCompany: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, id, saved.ID)
	assert.Equal(t, "Acme", saved.JobCompany)
}

func TestSavedJobService_Save_DuplicateIsConflict(t *testing.T) {
	svc, repo := newSavedJobService(t)

	userID := primitive.NewObjectID().Hex()
	existing := &model.SavedJob{ID: primitive.NewObjectID(), UserID: userID, JobID: "j1"}
	repo.EXPECT().FindByUserAndJob(gomock.Any(), userID, "j1").Return(existing, nil)

	_, err := svc.Save(context.Background(), &model.SaveJobRequest{UserID: userID, JobID: "j1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Contains(t, err.Error(), "already saved")
}

func TestSavedJobService_Save_RaceLoserStillConflicts(t *testing.T) {
	svc, repo := newSavedJobService(t)

	userID := primitive.NewObjectID().Hex()
	repo.EXPECT().
		FindByUserAndJob(gomock.Any(), userID, "j1").
		Return(nil, apperrors.NotFound("saved job not found"))
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return("", apperrors.Conflict("Resource already exists"))

	_, err := svc.Save(context.Background(), &model.SaveJobRequest{UserID: userID, JobID: "j1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

// The save path checks the userId identifier format; the apply path does
// not. jobId only needs to be present on either path.
func TestSavedJobService_Save_MalformedUserID(t *testing.T) {
	svc, _ := newSavedJobService(t)

	_, err := svc.Save(context.Background(), &model.SaveJobRequest{UserID: "nope", JobID: "j1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "userId", apperrors.GetField(err))
}

func TestSavedJobService_ListByUser_EmptyIsNotFound(t *testing.T) {
	svc, repo := newSavedJobService(t)

	userID := primitive.NewObjectID().Hex()
	repo.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, nil)

	_, err := svc.ListByUser(context.Background(), userID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSavedJobService_Unsave(t *testing.T) {
	svc, repo := newSavedJobService(t)

	repo.EXPECT().Delete(gomock.Any(), "id1").Return(true, nil)
	require.NoError(t, svc.Unsave(context.Background(), "id1"))
}

func TestSavedJobService_Unsave_NotFound(t *testing.T) {
	svc, repo := newSavedJobService(t)

	repo.EXPECT().Delete(gomock.Any(), "id1").Return(false, nil)

	err := svc.Unsave(context.Background(), "id1")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
