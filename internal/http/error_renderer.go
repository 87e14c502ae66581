package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/jobbox/jobbox-api/internal/errors"
)

// genericInternalMessage is returned to clients for internal failures so that
// store and driver details never leak into responses.
const genericInternalMessage = "An unexpected error occurred"

// StatusForError maps an application error code to an HTTP status code.
// Unknown errors are treated as internal.
func StatusForError(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeWriteRejected:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// WriteAppError translates a service-layer error into a JSON error response.
// Internal and write-rejected failures are logged with their cause and answered
// with a generic message; client-caused errors pass their message through.
func WriteAppError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := StatusForError(err)

	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}

	msg := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		// Message without the wrapped cause appended.
		msg = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		if logger != nil {
			logger.ErrorContext(r.Context(), "request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("code", string(code)),
				slog.Any("error", err),
			)
		}
		if code == apperrors.ErrCodeInternal {
			msg = genericInternalMessage
		}
	}

	WriteJSON(w, status, map[string]string{"error": string(code), "message": msg})
}
