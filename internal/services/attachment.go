package services

import (
	"context"

	"github.com/mstepanov/evreg/internal/models"
)

// AttachmentClaimer defines the attachment operations used by the claim
// protocol: lookup, the conditional claim updates and parent listing.
type AttachmentClaimer interface {
	GetByID(ctx context.Context, id int64) (*models.AttachmentDB, error)
	ClaimForProject(ctx context.Context, id, uploaderUID, projectID int64) (int64, error)
	ClaimForRegistration(ctx context.Context, id, uploaderUID, registrationID int64) (int64, error)
	ListByProjectID(ctx context.Context, projectID int64) ([]models.AttachmentDB, error)
	ListByRegistrationID(ctx context.Context, registrationID int64) ([]models.AttachmentDB, error)
}

// validateClaim runs the pre-checks of the claim protocol. The checks give
// precise errors; the conditional UPDATE behind them is what actually
// serializes concurrent claimers.
func validateClaim(att *models.AttachmentDB, uploaderUID int64) error {
	if att == nil {
		return ErrAttachmentNotFound
	}
	if att.UploadedByUID != uploaderUID {
		return ErrAttachmentForbidden
	}
	if att.ProjectID != nil || att.RegistrationID != nil {
		return ErrAttachmentClaimed
	}
	return nil
}
