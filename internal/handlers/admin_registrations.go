package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/models"
	"github.com/mstepanov/evreg/internal/services"
)

// RegistrationAdmin defines the administrative registration operations.
type RegistrationAdmin interface {
	List(ctx context.Context, status *string, page, pageSize int) ([]models.RegistrationDetail, int64, error)
	GetByID(ctx context.Context, registrationID int64) (*models.RegistrationDetail, error)
	AdminCreate(ctx context.Context, uid int64, note *string, attachmentIDs []int64) (*models.RegistrationDetail, error)
	Audit(ctx context.Context, registrationID int64, status string) (*models.RegistrationDetail, error)
	UpdateNote(ctx context.Context, registrationID int64, note string) (*models.RegistrationDetail, error)
	Delete(ctx context.Context, registrationID int64) error
}

// RegistrationListResponse represents a page of registrations
// swagger:model RegistrationListResponse
type RegistrationListResponse struct {
	Registrations []models.RegistrationDetail `json:"registrations"`
	Total         int64                       `json:"total"`
	Page          int                         `json:"page"`
	PageSize      int                         `json:"page_size"`
}

// AdminCreateRegistrationRequest represents the JSON body for creating a
// registration on behalf of a user
// swagger:model AdminCreateRegistrationRequest
type AdminCreateRegistrationRequest struct {
	// Target user
	// required: true
	UID int64 `json:"uid"`

	// Optional free-form note
	Note *string `json:"note"`

	// IDs of the target user's attachments to link
	AttachmentIDs []int64 `json:"attachment_ids"`
}

// UpdateRegistrationNoteRequest represents the JSON body for replacing a
// registration note
// swagger:model UpdateRegistrationNoteRequest
type UpdateRegistrationNoteRequest struct {
	// New note
	// required: true
	Note string `json:"note"`
}

// NewAdminListRegistrationsHandler returns an HTTP handler that lists
// registrations, newest first, optionally filtered by status.
// @Summary List registrations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(pending, approved, rejected)
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} handlers.RegistrationListResponse "Page of registrations"
// @Failure 400 {object} handlers.RegistrationErrorResponse "Unknown status"
// @Router /admin/registrations [get]
func NewAdminListRegistrationsHandler(svc RegistrationAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize := parsePage(r)

		var status *string
		if s := r.URL.Query().Get("status"); s != "" {
			status = &s
		}

		regs, total, err := svc.List(r.Context(), status, page, pageSize)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStatus):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "Unknown status"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RegistrationListResponse{
			Registrations: regs,
			Total:         total,
			Page:          page,
			PageSize:      pageSize,
		})
	}
}

// NewAdminGetRegistrationHandler returns an HTTP handler that serves one
// registration by ID.
// @Summary Get registration
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 200 {object} models.RegistrationDetail "Registration with attachments"
// @Failure 404 {object} handlers.RegistrationErrorResponse "Registration not found"
// @Router /admin/registrations/{id} [get]
func NewAdminGetRegistrationHandler(svc RegistrationAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r, "id")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "invalid registration id"})
			return
		}

		detail, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeRegistrationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}

// NewAdminCreateRegistrationHandler returns an HTTP handler that creates a
// registration for an arbitrary user. The duplicate pre-check is skipped; the
// storage constraint still rejects a second registration for the same user.
// @Summary Create registration for a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param adminCreateRegistrationRequest body handlers.AdminCreateRegistrationRequest true "Registration"
// @Success 201 {object} models.RegistrationDetail "Created registration"
// @Failure 400 {object} handlers.RegistrationErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.RegistrationErrorResponse "User already registered"
// @Router /admin/registrations [post]
func NewAdminCreateRegistrationHandler(svc RegistrationAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminCreateRegistrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UID <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "invalid request body"})
			return
		}

		detail, err := svc.AdminCreate(r.Context(), req.UID, req.Note, req.AttachmentIDs)
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

// NewAdminAuditRegistrationHandler returns an HTTP handler that sets a
// registration status.
// @Summary Audit registration
// @Description Sets the registration status to any known value, including back to pending.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param status query string true "New status" Enums(pending, approved, rejected)
// @Success 200 {object} models.RegistrationDetail "Updated registration"
// @Failure 400 {object} handlers.RegistrationErrorResponse "Unknown status"
// @Failure 404 {object} handlers.RegistrationErrorResponse "Registration not found"
// @Router /admin/registrations/{id}/audit [put]
func NewAdminAuditRegistrationHandler(svc RegistrationAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r, "id")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "invalid registration id"})
			return
		}

		detail, err := svc.Audit(r.Context(), id, r.URL.Query().Get("status"))
		if err != nil {
			writeRegistrationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}

// NewAdminUpdateRegistrationNoteHandler returns an HTTP handler that replaces
// a registration note.
// @Summary Update registration note
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param updateRegistrationNoteRequest body handlers.UpdateRegistrationNoteRequest true "Note"
// @Success 200 {object} models.RegistrationDetail "Updated registration"
// @Failure 404 {object} handlers.RegistrationErrorResponse "Registration not found"
// @Router /admin/registrations/{id} [put]
func NewAdminUpdateRegistrationNoteHandler(svc RegistrationAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r, "id")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "invalid registration id"})
			return
		}

		var req UpdateRegistrationNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "invalid request body"})
			return
		}

		detail, err := svc.UpdateNote(r.Context(), id, req.Note)
		if err != nil {
			writeRegistrationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}

// NewAdminDeleteRegistrationHandler returns an HTTP handler that deletes a
// registration and its attachments.
// @Summary Delete registration
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 204 "Registration deleted"
// @Failure 404 {object} handlers.RegistrationErrorResponse "Registration not found"
// @Router /admin/registrations/{id} [delete]
func NewAdminDeleteRegistrationHandler(svc RegistrationAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r, "id")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "invalid registration id"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeRegistrationError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeRegistrationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrRegistrationNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "Registration not found"})
	case errors.Is(err, services.ErrInvalidStatus):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "Unknown status"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(RegistrationErrorResponse{Error: "Internal server error"})
	}
}
