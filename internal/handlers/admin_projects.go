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

// ProjectAdmin defines the administrative project operations.
type ProjectAdmin interface {
	List(ctx context.Context, page, pageSize int) ([]models.ProjectDetail, int64, error)
	Details(ctx context.Context, projectID int64) (*models.ProjectDetail, error)
	Update(ctx context.Context, projectID int64, title, description, repoURL, demoURL *string) (*models.ProjectDetail, error)
	Delete(ctx context.Context, projectID int64) error
}

// AdminProjectListResponse represents a page of projects
// swagger:model AdminProjectListResponse
type AdminProjectListResponse struct {
	Projects []models.ProjectDetail `json:"projects"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// UpdateProjectRequest represents the JSON body for updating a project.
// Omitted fields keep their current value.
// swagger:model UpdateProjectRequest
type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	RepoURL     *string `json:"repo_url"`
	DemoURL     *string `json:"demo_url"`
}

// NewAdminListProjectsHandler returns an HTTP handler that lists all projects.
// @Summary List projects
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} handlers.AdminProjectListResponse "Page of projects"
// @Router /admin/projects [get]
func NewAdminListProjectsHandler(svc ProjectAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize := parsePage(r)

		projects, total, err := svc.List(r.Context(), page, pageSize)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminProjectListResponse{
			Projects: projects,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// NewAdminGetProjectHandler returns an HTTP handler that serves one project.
// @Summary Get project
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} models.ProjectDetail "Project with attachments"
// @Failure 404 {object} handlers.ProjectErrorResponse "Project not found"
// @Router /admin/projects/{id} [get]
func NewAdminGetProjectHandler(svc ProjectAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r, "id")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "invalid project id"})
			return
		}

		detail, err := svc.Details(r.Context(), id)
		if err != nil {
			writeProjectError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}

// NewAdminUpdateProjectHandler returns an HTTP handler that overwrites the
// provided project fields.
// @Summary Update project
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param updateProjectRequest body handlers.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} models.ProjectDetail "Updated project"
// @Failure 404 {object} handlers.ProjectErrorResponse "Project not found"
// @Router /admin/projects/{id} [put]
func NewAdminUpdateProjectHandler(svc ProjectAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r, "id")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "invalid project id"})
			return
		}

		var req UpdateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "invalid request body"})
			return
		}

		detail, err := svc.Update(r.Context(), id, req.Title, req.Description, req.RepoURL, req.DemoURL)
		if err != nil {
			writeProjectError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}

// NewAdminDeleteProjectHandler returns an HTTP handler that deletes a project
// and its attachments.
// @Summary Delete project
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 204 "Project deleted"
// @Failure 404 {object} handlers.ProjectErrorResponse "Project not found"
// @Router /admin/projects/{id} [delete]
func NewAdminDeleteProjectHandler(svc ProjectAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r, "id")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "invalid project id"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeProjectError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeProjectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "Project not found"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "Internal server error"})
	}
}
