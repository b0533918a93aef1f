package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/services"
)

// CodeRequester defines the interface that the code-issuing service must implement.
type CodeRequester interface {
	RequestCode(ctx context.Context, email, codeType string) (int, error)
}

// SendCodeRequest represents the JSON body for requesting a verification code
// swagger:model SendCodeRequest
type SendCodeRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`
}

// SendCodeResponse represents a successful code request
// swagger:model SendCodeResponse
type SendCodeResponse struct {
	// Seconds until the code expires
	// example: 300
	ExpireIn int `json:"expire_in"`
}

// SendCodeErrorResponse represents an error response for code requests
// swagger:model SendCodeErrorResponse
type SendCodeErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewSendCodeHandler returns an HTTP handler that issues a verification code
// for the given purpose (register or reset).
// @Summary Request a verification code
// @Description Stores a one-time 6-digit code for the email and dispatches delivery in the background.
// @Tags auth
// @Accept json
// @Produce json
// @Param sendCodeRequest body handlers.SendCodeRequest true "Code request"
// @Success 200 {object} handlers.SendCodeResponse "Code stored, TTL returned"
// @Failure 400 {object} handlers.SendCodeErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.SendCodeErrorResponse "Email already registered"
// @Failure 429 {object} handlers.SendCodeErrorResponse "Requested too soon"
// @Router /auth/send-verification-code [post]
func NewSendCodeHandler(svc CodeRequester, codeType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendCodeRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SendCodeErrorResponse{Error: "invalid request body"})
			return
		}

		expireIn, err := svc.RequestCode(r.Context(), req.Email, codeType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SendCodeErrorResponse{Error: "Email is already registered"})
			case errors.Is(err, services.ErrCodeRequestTooSoon):
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(SendCodeErrorResponse{Error: "Verification code requested too soon"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SendCodeErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SendCodeResponse{ExpireIn: expireIn})
	}
}
