package errors

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// MapStoreError maps document-store errors to AppError instances.
// It handles the common MongoDB error patterns:
// - mongo.ErrNoDocuments → NotFound
// - duplicate key (unique index violation) → Conflict
// - everything else → Internal
//
// Errors that are already AppErrors pass through unchanged so handlers
// can map repository errors without double-wrapping.
func MapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return &AppError{
			Code:    ErrCodeNotFound,
			Message: "Resource not found",
			Cause:   err,
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return &AppError{
			Code:    ErrCodeConflict,
			Message: "Resource already exists",
			Cause:   err,
		}
	}

	return &AppError{
		Code:    ErrCodeInternal,
		Message: "An unexpected error occurred",
		Cause:   err,
	}
}
