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

func TestApply_SuccessAnswers200(t *testing.T) {
	router, m := newTestRouter(t)

	userID := primitive.NewObjectID().Hex()
	jobID := primitive.NewObjectID().Hex()
	appID := primitive.NewObjectID()

	m.apps.EXPECT().FindByUserAndJob(gomock.Any(), userID, jobID).
		Return(nil, apperrors.NotFound("application not found"))
	m.apps.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, app *model.AppliedJob) (string, error) {
			assert.Equal(t, userID, app.UserID)
			assert.Equal(t, jobID, app.JobID)
			return appID.Hex(), nil
		})

	rec := doRequest(t, router, http.MethodPost, "/applied-jobs", model.ApplyRequest{
		UserID: userID, JobID: jobID, FullName: "Dana", Email: "dana@example.com",
	})
	// Applying deliberately answers 200, not 201.
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	decodeBody(t, rec, &got)
	assert.Equal(t, appID.Hex(), got["_id"])
}

func TestApply_DuplicateIsConflict(t *testing.T) {
	router, m := newTestRouter(t)

	userID := primitive.NewObjectID().Hex()
	jobID := primitive.NewObjectID().Hex()

	m.apps.EXPECT().FindByUserAndJob(gomock.Any(), userID, jobID).
		Return(&model.AppliedJob{UserID: userID, JobID: jobID}, nil)

	rec := doRequest(t, router, http.MethodPost, "/applied-jobs", model.ApplyRequest{
		UserID: userID, JobID: jobID,
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "conflict", body["error"])
}

func TestApply_MissingIDs(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/applied-jobs", model.ApplyRequest{UserID: "u1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAppliedByUser_MalformedUserID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/applied-jobs/not-an-object-id", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAppliedByUser_Empty(t *testing.T) {
	router, m := newTestRouter(t)

	userID := primitive.NewObjectID().Hex()
	m.apps.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/applied-jobs/"+userID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWithdraw_Success(t *testing.T) {
	router, m := newTestRouter(t)

	id := primitive.NewObjectID().Hex()
	m.apps.EXPECT().Delete(gomock.Any(), id).Return(true, nil)

	rec := doRequest(t, router, http.MethodDelete, "/applied-jobs/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
