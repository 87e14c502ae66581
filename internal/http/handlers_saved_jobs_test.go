package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/jobbox/jobbox-api/internal/domain/model"
	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

func TestSaveJob_SuccessAnswers201(t *testing.T) {
	router, m := newTestRouter(t)

	userID := primitive.NewObjectID().Hex()
	jobID := primitive.NewObjectID().Hex()
	savedID := primitive.NewObjectID()

	m.saved.EXPECT().FindByUserAndJob(gomock.Any(), userID, jobID).
		Return(nil, apperrors.NotFound("saved job not found"))
	m.saved.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, saved *model.SavedJob) (string, error) {
			assert.Equal(t, "Acme", saved.JobCompany)
			return savedID.Hex(), nil
		})

	rec := doRequest(t, router, http.MethodPost, "/saved-jobs", model.SaveJobRequest{
		UserID: userID, JobID: jobID, JobCompany: "Acme", JobPosition: "Engineer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	decodeBody(t, rec, &got)
	assert.Equal(t, savedID.Hex(), got["_id"])
}

func TestSaveJob_MalformedUserID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/saved-jobs", model.SaveJobRequest{
		UserID: "not-an-object-id", JobID: primitive.NewObjectID().Hex(),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveJob_DuplicateIsConflict(t *testing.T) {
	router, m := newTestRouter(t)

	userID := primitive.NewObjectID().Hex()
	jobID := primitive.NewObjectID().Hex()

	m.saved.EXPECT().FindByUserAndJob(gomock.Any(), userID, jobID).
		Return(&model.SavedJob{UserID: userID, JobID: jobID}, nil)

	rec := doRequest(t, router, http.MethodPost, "/saved-jobs", model.SaveJobRequest{
		UserID: userID, JobID: jobID,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestListSavedByUser_MalformedUserID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/saved-jobs/not-an-object-id", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnsave_Unknown(t *testing.T) {
	router, m := newTestRouter(t)

	id := primitive.NewObjectID().Hex()
	m.saved.EXPECT().Delete(gomock.Any(), id).Return(false, nil)

	rec := doRequest(t, router, http.MethodDelete, "/saved-jobs/"+id, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
