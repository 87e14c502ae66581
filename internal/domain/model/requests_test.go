package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	valid := CreateUserRequest{Name: "A", Email: "a@x.com", Role: "user"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name      string
		req       CreateUserRequest
		wantField string
	}{
		{"missing name", CreateUserRequest{Email: "a@x.com", Role: "user"}, "name"},
		{"missing email", CreateUserRequest{Name: "A", Role: "user"}, "email"},
		{"missing role", CreateUserRequest{Name: "A", Email: "a@x.com"}, "role"},
		{"whitespace role", CreateUserRequest{Name: "A", Email: "a@x.com", Role: "  "}, "role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.wantField, apperrors.GetField(err))
		})
	}
}

func TestUpdateRoleRequest_Validate(t *testing.T) {
	require.NoError(t, (&UpdateRoleRequest{Role: "admin"}).Validate())
	err := (&UpdateRoleRequest{}).Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplyRequest_Validate(t *testing.T) {
	valid := ApplyRequest{UserID: "u1", JobID: "j1"}
	require.NoError(t, valid.Validate())

	// The apply path accepts any non-empty userId; only the save path
	// checks the identifier format.
	loose := ApplyRequest{UserID: "not-an-object-id", JobID: "j1"}
	require.NoError(t, loose.Validate())

	err := (&ApplyRequest{JobID: "j1"}).Validate()
	require.Error(t, err)
	assert.Equal(t, "userId", apperrors.GetField(err))

	err = (&ApplyRequest{UserID: "u1"}).Validate()
	require.Error(t, err)
	assert.Equal(t, "jobId", apperrors.GetField(err))
}

func TestSaveJobRequest_Validate(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	require.NoError(t, (&SaveJobRequest{UserID: userID, JobID: "j1"}).Validate())

	err := (&SaveJobRequest{UserID: "nope", JobID: "j1"}).Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "userId", apperrors.GetField(err))

	err = (&SaveJobRequest{UserID: userID}).Validate()
	require.Error(t, err)
	assert.Equal(t, "jobId", apperrors.GetField(err))

	err = (&SaveJobRequest{JobID: "j1"}).Validate()
	require.Error(t, err)
	assert.Equal(t, "userId", apperrors.GetField(err))
}
