package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMapStoreError_Nil(t *testing.T) {
	assert.Nil(t, MapStoreError(nil))
}

func TestMapStoreError_NoDocuments(t *testing.T) {
	got := MapStoreError(mongo.ErrNoDocuments)
	require.Error(t, got)
	assert.True(t, IsNotFound(got))
}

func TestMapStoreError_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	got := MapStoreError(dup)
	require.Error(t, got)
	assert.True(t, IsConflict(got))
}

func TestMapStoreError_Unknown(t *testing.T) {
	got := MapStoreError(stderrors.New("connection refused"))
	require.Error(t, got)
	assert.True(t, IsInternal(got))
}

func TestMapStoreError_PassthroughAppError(t *testing.T) {
	orig := Conflict("already saved")
	got := MapStoreError(orig)
	assert.Same(t, orig, got.(*AppError))
}
