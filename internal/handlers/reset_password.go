package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/services"
)

// PasswordResetter defines the interface that the reset service must implement.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Verification code previously sent to the email
	// required: true
	VerificationCode string `json:"verification_code"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// ResetPasswordResponse represents a successful reset
// swagger:model ResetPasswordResponse
type ResetPasswordResponse struct {
	Message string `json:"message"`
}

// ResetPasswordErrorResponse represents an error response for password reset
// swagger:model ResetPasswordErrorResponse
type ResetPasswordErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewResetPasswordHandler returns an HTTP handler for password reset.
// @Summary Reset password
// @Description Replaces the account password after validating the emailed reset code. The code is consumed in the same transaction.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Password reset request"
// @Success 200 {object} handlers.ResetPasswordResponse "Password replaced"
// @Failure 400 {object} handlers.ResetPasswordErrorResponse "Invalid or expired verification code"
// @Router /auth/forgot-password/reset [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResetPasswordErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.ResetPassword(r.Context(), req.Email, req.VerificationCode, req.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidVerificationCode),
				errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ResetPasswordErrorResponse{Error: "Verification code is invalid or expired"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ResetPasswordErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResetPasswordResponse{Message: "Password reset successfully"})
	}
}
