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

// RegistrationCreator defines the interface for submitting an event
// registration.
type RegistrationCreator interface {
	Create(ctx context.Context, uid int64, note *string, attachmentIDs []int64) (*models.RegistrationDetail, error)
}

// RegistrationStatuser defines the interface for reading the caller's
// registration.
type RegistrationStatuser interface {
	Status(ctx context.Context, uid int64) (*models.RegistrationDetail, error)
}

// CreateRegistrationRequest represents the JSON body for submitting a
// registration
// swagger:model CreateRegistrationRequest
type CreateRegistrationRequest struct {
	// Optional free-form note
	Note *string `json:"note"`

	// IDs of previously uploaded attachments to link
	AttachmentIDs []int64 `json:"attachment_ids"`
}

// RegistrationErrorResponse represents an error response for registration
// operations
// swagger:model RegistrationErrorResponse
type RegistrationErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// writeClaimError maps attachment claim failures to HTTP statuses shared by
// registration and project creation.
func writeClaimError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, services.ErrAttachmentNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "Attachment not found"})
	case errors.Is(err, services.ErrAttachmentForbidden):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "Attachment was uploaded by another user"})
	case errors.Is(err, services.ErrAttachmentClaimed):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "Attachment is already linked"})
	default:
		return false
	}
	return true
}

// NewCreateRegistrationHandler returns an HTTP handler that submits the
// caller's event registration.
// @Summary Submit event registration
// @Description Creates the caller's single registration in pending status and links the given attachments all-or-nothing.
// @Tags registration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createRegistrationRequest body handlers.CreateRegistrationRequest true "Registration"
// @Success 201 {object} models.RegistrationDetail "Created registration with attachments"
// @Failure 400 {object} handlers.RegistrationErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.RegistrationErrorResponse "Attachment uploaded by another user"
// @Failure 404 {object} handlers.RegistrationErrorResponse "Attachment not found"
// @Failure 409 {object} handlers.RegistrationErrorResponse "Registration exists or attachment already linked"
// @Router /registration [post]
func NewCreateRegistrationHandler(svc RegistrationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req CreateRegistrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "invalid request body"})
			return
		}

		detail, err := svc.Create(r.Context(), user.UID, req.Note, req.AttachmentIDs)
		if err != nil {
			if errors.Is(err, services.ErrRegistrationExists) {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "Registration already exists"})
				return
			}
			if writeClaimError(w, err) {
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(detail)
	}
}

// NewRegistrationStatusHandler returns an HTTP handler that serves the
// caller's registration with its attachments.
// @Summary Get own registration status
// @Tags registration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.RegistrationDetail "Registration with attachments"
// @Failure 404 {object} handlers.RegistrationErrorResponse "No registration yet"
// @Router /registration/status [get]
func NewRegistrationStatusHandler(svc RegistrationStatuser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		detail, err := svc.Status(r.Context(), user.UID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRegistrationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "Registration not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}
