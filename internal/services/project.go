package services

import (
	"context"

	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/models"
)

// ProjectReader defines read-only operations for projects.
type ProjectReader interface {
	GetByID(ctx context.Context, projectID int64) (*models.ProjectDB, error)
	GetByUID(ctx context.Context, uid int64) ([]models.ProjectDB, error)
	List(ctx context.Context, page, pageSize int) ([]models.ProjectDB, int64, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	Create(ctx context.Context, uid int64, title, description string, repoURL, demoURL *string) (*models.ProjectDB, error)
	Update(ctx context.Context, projectID int64, title, description, repoURL, demoURL *string) (*models.ProjectDB, error)
	Delete(ctx context.Context, projectID int64) (int64, error)
}

// ProjectService creates and lists projects and links attachments to them.
// Unlike registrations there is no per-user cardinality limit.
type ProjectService struct {
	reader      ProjectReader
	writer      ProjectWriter
	attachments AttachmentClaimer
}

// NewProjectService creates a new ProjectService instance.
func NewProjectService(reader ProjectReader, writer ProjectWriter, attachments AttachmentClaimer) *ProjectService {
	return &ProjectService{
		reader:      reader,
		writer:      writer,
		attachments: attachments,
	}
}

func (svc *ProjectService) detail(ctx context.Context, p *models.ProjectDB) (*models.ProjectDetail, error) {
	atts, err := svc.attachments.ListByProjectID(ctx, p.ProjectID)
	if err != nil {
		return nil, err
	}
	return &models.ProjectDetail{ProjectDB: *p, Attachments: atts}, nil
}

// Create inserts a project and claims the given attachments in caller order,
// all-or-nothing within the request transaction.
func (svc *ProjectService) Create(ctx context.Context, uid int64, title, description string, repoURL, demoURL *string, attachmentIDs []int64) (*models.ProjectDetail, error) {
	p, err := svc.writer.Create(ctx, uid, title, description, repoURL, demoURL)
	if err != nil {
		logger.Log.Errorw("failed to insert project", "uid", uid, "err", err)
		return nil, err
	}

	for _, id := range attachmentIDs {
		att, err := svc.attachments.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := validateClaim(att, uid); err != nil {
			return nil, err
		}
		rows, err := svc.attachments.ClaimForProject(ctx, id, uid, p.ProjectID)
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, ErrAttachmentClaimed
		}
	}

	return svc.detail(ctx, p)
}

// My returns the caller's projects, newest first, with attachments.
func (svc *ProjectService) My(ctx context.Context, uid int64) ([]models.ProjectDetail, error) {
	projects, err := svc.reader.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	details := make([]models.ProjectDetail, 0, len(projects))
	for i := range projects {
		d, err := svc.detail(ctx, &projects[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

// Details returns one project with its attachments.
func (svc *ProjectService) Details(ctx context.Context, projectID int64) (*models.ProjectDetail, error) {
	p, err := svc.reader.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProjectNotFound
	}
	return svc.detail(ctx, p)
}

// List returns a page of all projects with the total count (admin view).
func (svc *ProjectService) List(ctx context.Context, page, pageSize int) ([]models.ProjectDetail, int64, error) {
	projects, total, err := svc.reader.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	details := make([]models.ProjectDetail, 0, len(projects))
	for i := range projects {
		d, err := svc.detail(ctx, &projects[i])
		if err != nil {
			return nil, 0, err
		}
		details = append(details, *d)
	}
	return details, total, nil
}

// Update overwrites the provided fields of a project.
func (svc *ProjectService) Update(ctx context.Context, projectID int64, title, description, repoURL, demoURL *string) (*models.ProjectDetail, error) {
	p, err := svc.writer.Update(ctx, projectID, title, description, repoURL, demoURL)
	if err != nil {
		logger.Log.Errorw("failed to update project", "project_id", projectID, "err", err)
		return nil, err
	}
	if p == nil {
		return nil, ErrProjectNotFound
	}
	return svc.detail(ctx, p)
}

// Delete removes a project and, by cascade, its attachments.
func (svc *ProjectService) Delete(ctx context.Context, projectID int64) error {
	rows, err := svc.writer.Delete(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to delete project", "project_id", projectID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrProjectNotFound
	}
	return nil
}
