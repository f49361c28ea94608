package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/restaurant-reviews/internal/model"
	"github.com/sakif/restaurant-reviews/internal/service"
)

// upsertUserRequest: absent or null email/displayName are left untouched
// on an existing profile.
type upsertUserRequest struct {
	UserID      flexString `json:"userId"`
	Email       *string    `json:"email"`
	DisplayName *string    `json:"displayName"`
}

type UserHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

func NewUserHandler(users *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// HandleGet returns a profile or 404.
//
// HTTP: GET /api/users/{userId}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	profile, err := h.users.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to fetch user")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleUpsert creates or merges a profile.
//
// HTTP: POST /api/users
// BODY: {"userId","email","displayName"}
func (h *UserHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var req upsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, h.logger, err)
		return
	}

	written, err := h.users.Upsert(r.Context(), string(req.UserID), model.ProfileFields{
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		writeError(w, h.logger, err, "Failed to create user")
		return
	}

	writeJSON(w, http.StatusOK, written)
}
