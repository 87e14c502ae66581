package httpx

import (
	"log/slog"
	"net/http"

	"github.com/jobbox/jobbox-api/internal/domain/model"
	"github.com/jobbox/jobbox-api/internal/service"
)

// UserHandlers provides HTTP handlers for user accounts.
type UserHandlers struct {
	Svc    *service.UserService
	Logger *slog.Logger
}

// ListOrLookup handles GET /users. Without an email query param it lists all
// users; with one it looks the user up and answers 200 with a JSON null body
// when no account exists yet. Frontends probe this on first sign-in to decide
// whether to register, so absence is a plain success rather than a 404.
func (h *UserHandlers) ListOrLookup(w http.ResponseWriter, r *http.Request) {
	if email := r.URL.Query().Get("email"); email != "" {
		user, err := h.Svc.LookupByEmail(r.Context(), email)
		if err != nil {
			WriteAppError(w, r, h.Logger, err)
			return
		}
		WriteJSON(w, http.StatusOK, user)
		return
	}

	users, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, users)
}

// GetByEmail handles GET /users/{email} and 404s when the user is absent.
func (h *UserHandlers) GetByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.Svc.GetByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Create handles POST /users.
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}

// UpdateRole handles PATCH /users/{id} and changes a user's role.
func (h *UserHandlers) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateRoleRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.UpdateRole(r.Context(), r.PathValue("id"), &req); err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "user role updated successfully"})
}

// Delete handles DELETE /users/{id}.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, r, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "user deleted successfully"})
}
