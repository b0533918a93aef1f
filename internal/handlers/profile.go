package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/middlewares"
	"github.com/mstepanov/evreg/internal/models"
	"github.com/mstepanov/evreg/internal/services"
)

// ProfileUpdater defines the interface that the profile service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, user *models.UserDB, username, bio, phone, avatarURL *string) (*models.UserDB, error)
}

// UpdateProfileRequest represents the JSON body for a profile update. Omitted
// fields keep their current value.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
}

// ProfileErrorResponse represents an error response for profile operations
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewGetProfileHandler returns an HTTP handler that serves the caller's profile.
// @Summary Get current user's profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserDB "Profile"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Router /user/profile [get]
func NewGetProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}

// NewUpdateProfileHandler returns an HTTP handler that updates the caller's
// profile.
// @Summary Update current user's profile
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update"
// @Success 200 {object} models.UserDB "Updated profile"
// @Failure 400 {object} handlers.ProfileErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ProfileErrorResponse "Username already taken"
// @Router /user/profile [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "invalid request body"})
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), user, req.Username, req.Bio, req.Phone, req.AvatarURL)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Username already taken"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(updated)
	}
}
