package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/models"
)

// StatsCounter defines the interface that the stats service must implement.
type StatsCounter interface {
	Counts(ctx context.Context) (*models.StatsCounts, error)
}

// UserPager lists users page by page.
type UserPager interface {
	List(ctx context.Context, page, pageSize int) ([]models.UserDB, int64, error)
}

// PingResponse represents the admin ping payload
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message"`
}

// UserListResponse represents a page of users
// swagger:model UserListResponse
type UserListResponse struct {
	Users    []models.UserDB `json:"users"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// AdminErrorResponse represents an error response for admin operations
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewAdminPingHandler returns an HTTP handler confirming admin access.
// @Summary Admin access check
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.PingResponse "Caller is an admin"
// @Router /admin/ping [get]
func NewAdminPingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PingResponse{Message: "pong"})
	}
}

// NewAdminStatsHandler returns an HTTP handler that serves entity counts.
// @Summary Entity counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StatsCounts "Counts of users, registrations, projects and attachments"
// @Router /admin/stats [get]
func NewAdminStatsHandler(svc StatsCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.Counts(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(counts)
	}
}

// NewAdminListUsersHandler returns an HTTP handler that lists users.
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} handlers.UserListResponse "Page of users"
// @Router /admin/users [get]
func NewAdminListUsersHandler(users UserPager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize := parsePage(r)

		items, total, err := users.List(r.Context(), page, pageSize)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserListResponse{
			Users:    items,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
