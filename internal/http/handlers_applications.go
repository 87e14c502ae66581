package httpx

import (
	"log/slog"
	"net/http"

	"github.com/jobbox/jobbox-api/internal/domain/model"
	"github.com/jobbox/jobbox-api/internal/service"
)

// ApplicationHandlers provides HTTP handlers for job applications.
type ApplicationHandlers struct {
	Svc    *service.ApplicationService
	Logger *slog.Logger
}

// ListByUser handles GET /applied-jobs/{userId}.
func (h *ApplicationHandlers) ListByUser(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Svc.ListByUser(r.Context(), r.PathValue("userId"))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, apps)
}

// Apply handles POST /applied-jobs. At most one application exists per
// (userId, jobId); a repeat attempt answers 409. A successful apply answers
// 200, not 201 — existing clients key off that status.
func (h *ApplicationHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	var req model.ApplyRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	app, err := h.Svc.Apply(r.Context(), &req)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, app)
}

// Withdraw handles DELETE /applied-jobs/{id}.
func (h *ApplicationHandlers) Withdraw(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Withdraw(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "application withdrawn successfully"})
}
