package httpx

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/jobbox/jobbox-api/internal/domain/model"
	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

// TestUserLifecycleWorkflow walks a user account through its whole life:
// first-sign-in probe (null), registration, lookup, role change, deletion,
// and the post-deletion 404.
func TestUserLifecycleWorkflow(t *testing.T) {
	router, m := newTestRouter(t)

	email := "dana@example.com"
	id := primitive.NewObjectID()
	var stored *model.User

	m.users.EXPECT().FindByEmail(gomock.Any(), email).
		DoAndReturn(func(_ any, _ string) (*model.User, error) {
			if stored == nil {
				return nil, apperrors.NotFound("user not found")
			}
			return stored, nil
		}).AnyTimes()
	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, user *model.User) (string, error) {
			stored = user
			stored.ID = id
			return id.Hex(), nil
		})
	m.users.EXPECT().UpdateRole(gomock.Any(), id.Hex(), "employer").
		DoAndReturn(func(_ any, _, role string) (bool, error) {
			stored.Role = role
			return true, nil
		})
	m.users.EXPECT().Delete(gomock.Any(), id.Hex()).
		DoAndReturn(func(_ any, _ string) (bool, error) {
			stored = nil
			return true, nil
		})

	// 1. First-sign-in probe: plain 200 with a null body, never a 404.
	rec := doRequest(t, router, http.MethodGet, "/users?email="+email, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	// 2. Register.
	rec = doRequest(t, router, http.MethodPost, "/users", model.CreateUserRequest{
		Name: "Dana", Email: email, Role: "seeker",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// 3. The probe now finds the account.
	rec = doRequest(t, router, http.MethodGet, "/users?email="+email, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var found model.User
	decodeBody(t, rec, &found)
	assert.Equal(t, "seeker", found.Role)

	// 4. Promote to employer.
	rec = doRequest(t, router, http.MethodPatch, "/users/"+id.Hex(), model.UpdateRoleRequest{Role: "employer"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/users/"+email, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &found)
	assert.Equal(t, "employer", found.Role)

	// 5. Delete, after which the direct lookup 404s.
	rec = doRequest(t, router, http.MethodDelete, "/users/"+id.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/users/"+email, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

// TestSavedJobWorkflow covers the bookmark round trip: save, duplicate save
// rejected without a second insert, list, unsave, empty list 404.
func TestSavedJobWorkflow(t *testing.T) {
	router, m := newTestRouter(t)

	userID := primitive.NewObjectID().Hex()
	jobID := primitive.NewObjectID().Hex()
	savedID := primitive.NewObjectID()
	var stored *model.SavedJob

	m.saved.EXPECT().FindByUserAndJob(gomock.Any(), userID, jobID).
		DoAndReturn(func(_ any, _, _ string) (*model.SavedJob, error) {
			if stored == nil {
				return nil, apperrors.NotFound("saved job not found")
			}
			return stored, nil
		}).AnyTimes()
	// Exactly one insert may happen; the duplicate attempt must not reach it.
	m.saved.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, saved *model.SavedJob) (string, error) {
			stored = saved
			stored.ID = savedID
			return savedID.Hex(), nil
		}).Times(1)
	m.saved.EXPECT().ListByUser(gomock.Any(), userID).
		DoAndReturn(func(_ any, _ string) ([]*model.SavedJob, error) {
			if stored == nil {
				return nil, nil
			}
			return []*model.SavedJob{stored}, nil
		}).AnyTimes()
	m.saved.EXPECT().Delete(gomock.Any(), savedID.Hex()).
		DoAndReturn(func(_ any, _ string) (bool, error) {
			stored = nil
			return true, nil
		})

	save := model.SaveJobRequest{UserID: userID, JobID: jobID, JobCompany: "Acme"}

	rec := doRequest(t, router, http.MethodPost, "/saved-jobs", save)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/saved-jobs", save)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/saved-jobs/"+userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []*model.SavedJob
	decodeBody(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Acme", listed[0].JobCompany)

	rec = doRequest(t, router, http.MethodDelete, "/saved-jobs/"+savedID.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/saved-jobs/"+userID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
