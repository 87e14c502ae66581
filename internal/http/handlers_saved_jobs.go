package httpx

import (
	"log/slog"
	"net/http"

	"github.com/jobbox/jobbox-api/internal/domain/model"
	"github.com/jobbox/jobbox-api/internal/service"
)

// SavedJobHandlers provides HTTP handlers for saved-job bookmarks.
type SavedJobHandlers struct {
	Svc    *service.SavedJobService
	Logger *slog.Logger
}

// ListByUser handles GET /saved-jobs/{userId}.
func (h *SavedJobHandlers) ListByUser(w http.ResponseWriter, r *http.Request) {
	saved, err := h.Svc.ListByUser(r.Context(), r.PathValue("userId"))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, saved)
}

// Save handles POST /saved-jobs. At most one bookmark exists per
// (userId, jobId); saving the same job again answers 409.
func (h *SavedJobHandlers) Save(w http.ResponseWriter, r *http.Request) {
	var req model.SaveJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	saved, err := h.Svc.Save(r.Context(), &req)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, saved)
}

// Unsave handles DELETE /saved-jobs/{savedJobId}.
func (h *SavedJobHandlers) Unsave(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Unsave(r.Context(), r.PathValue("savedJobId")); err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "saved job removed successfully"})
}
