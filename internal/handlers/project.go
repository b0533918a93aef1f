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

// ProjectCreator defines the interface for creating projects.
type ProjectCreator interface {
	Create(ctx context.Context, uid int64, title, description string, repoURL, demoURL *string, attachmentIDs []int64) (*models.ProjectDetail, error)
}

// ProjectLister defines the interface for listing the caller's projects.
type ProjectLister interface {
	My(ctx context.Context, uid int64) ([]models.ProjectDetail, error)
}

// ProjectGetter defines the interface for reading a single project.
type ProjectGetter interface {
	Details(ctx context.Context, projectID int64) (*models.ProjectDetail, error)
}

// CreateProjectRequest represents the JSON body for creating a project
// swagger:model CreateProjectRequest
type CreateProjectRequest struct {
	// Title
	// required: true
	Title string `json:"title"`

	// Description
	// required: true
	Description string `json:"description"`

	// Optional repository URL
	RepoURL *string `json:"repo_url"`

	// Optional demo URL
	DemoURL *string `json:"demo_url"`

	// IDs of previously uploaded attachments to link
	AttachmentIDs []int64 `json:"attachment_ids"`
}

// ProjectListResponse represents the caller's project list
// swagger:model ProjectListResponse
type ProjectListResponse struct {
	Projects []models.ProjectDetail `json:"projects"`
}

// ProjectErrorResponse represents an error response for project operations
// swagger:model ProjectErrorResponse
type ProjectErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCreateProjectHandler returns an HTTP handler that creates a project for
// the caller.
// @Summary Create a project
// @Description Creates a project and links the given attachments all-or-nothing.
// @Tags project
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createProjectRequest body handlers.CreateProjectRequest true "Project"
// @Success 201 {object} models.ProjectDetail "Created project with attachments"
// @Failure 400 {object} handlers.ProjectErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.ProjectErrorResponse "Attachment uploaded by another user"
// @Failure 404 {object} handlers.ProjectErrorResponse "Attachment not found"
// @Failure 409 {object} handlers.ProjectErrorResponse "Attachment already linked"
// @Router /project [post]
func NewCreateProjectHandler(svc ProjectCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" || req.Description == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "invalid request body"})
			return
		}

		detail, err := svc.Create(r.Context(), user.UID, req.Title, req.Description, req.RepoURL, req.DemoURL, req.AttachmentIDs)
		if err != nil {
			if writeClaimError(w, err) {
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(detail)
	}
}

// NewMyProjectsHandler returns an HTTP handler that lists the caller's
// projects, newest first.
// @Summary List own projects
// @Tags project
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ProjectListResponse "Projects with attachments"
// @Router /project/my [get]
func NewMyProjectsHandler(svc ProjectLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		projects, err := svc.My(r.Context(), user.UID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProjectListResponse{Projects: projects})
	}
}

// NewProjectDetailsHandler returns an HTTP handler that serves a single
// project with its attachments.
// @Summary Get project details
// @Tags project
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Success 200 {object} models.ProjectDetail "Project with attachments"
// @Failure 404 {object} handlers.ProjectErrorResponse "Project not found"
// @Router /project/{projectID} [get]
func NewProjectDetailsHandler(svc ProjectGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := parseIDParam(r, "projectID")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "invalid project id"})
			return
		}

		detail, err := svc.Details(r.Context(), projectID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "Project not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProjectErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}
