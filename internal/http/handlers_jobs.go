package httpx

import (
	"log/slog"
	"net/http"

	"github.com/jobbox/jobbox-api/internal/domain/model"
	"github.com/jobbox/jobbox-api/internal/service"
)

// JobHandlers provides HTTP handlers for job listings.
type JobHandlers struct {
	Svc      *service.JobService
	MaxLimit int
	Logger   *slog.Logger
}

// List handles GET /jobs and returns every job, newest data included.
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// ListPaginated handles GET /jobs-by-pagination with page/limit query params.
func (h *JobHandlers) ListPaginated(w http.ResponseWriter, r *http.Request) {
	page, limit := ParsePageLimit(r, h.MaxLimit)

	result, err := h.Svc.ListPaginated(r.Context(), page, limit)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// GetByID handles GET /jobs/{id} and returns a single job document.
func (h *JobHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	job, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// ListByApplicantEmail handles GET /jobs/applied-by-email/{email} and returns
// every job whose embedded applicant records contain the given email.
func (h *JobHandlers) ListByApplicantEmail(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Svc.ListByApplicantEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// Featured handles GET /featured-jobs and returns the most recently posted jobs.
func (h *JobHandlers) Featured(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Svc.Featured(r.Context())
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// Create handles POST /jobs. The payload is stored as-is: fields beyond the
// known ones survive the round trip through the store.
func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var job model.Job
	if !DecodeJSON(w, r, &job) {
		return
	}

	created, err := h.Svc.Create(r.Context(), &job)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

// Delete handles DELETE /jobs/{id}.
func (h *JobHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "job deleted successfully"})
}
