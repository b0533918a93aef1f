package services

import (
	"context"
	"strconv"

	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/models"
)

// RegistrationReader defines read-only operations for registrations.
type RegistrationReader interface {
	GetByUID(ctx context.Context, uid int64) (*models.RegistrationDB, error)
	GetByID(ctx context.Context, registrationID int64) (*models.RegistrationDB, error)
	List(ctx context.Context, status *string, page, pageSize int) ([]models.RegistrationDB, int64, error)
}

// RegistrationWriter defines write operations for registrations.
type RegistrationWriter interface {
	Create(ctx context.Context, uid int64, note *string) (*models.RegistrationDB, error)
	UpdateStatus(ctx context.Context, registrationID int64, status string) (*models.RegistrationDB, error)
	UpdateNote(ctx context.Context, registrationID int64, note string) (*models.RegistrationDB, error)
	Delete(ctx context.Context, registrationID int64) (int64, error)
}

// RegistrationService enforces one-registration-per-user, links attachments
// and exposes the admin audit operations.
type RegistrationService struct {
	reader      RegistrationReader
	writer      RegistrationWriter
	attachments AttachmentClaimer
	events      EventWriter
}

// NewRegistrationService creates a new RegistrationService instance.
func NewRegistrationService(reader RegistrationReader, writer RegistrationWriter, attachments AttachmentClaimer, events EventWriter) *RegistrationService {
	return &RegistrationService{
		reader:      reader,
		writer:      writer,
		attachments: attachments,
		events:      events,
	}
}

// claimAll claims each attachment for the registration in caller order.
// The first failure aborts; the surrounding request transaction rolls back
// the insert and every prior claim.
func (svc *RegistrationService) claimAll(ctx context.Context, registrationID, uploaderUID int64, attachmentIDs []int64) error {
	for _, id := range attachmentIDs {
		att, err := svc.attachments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := validateClaim(att, uploaderUID); err != nil {
			return err
		}
		rows, err := svc.attachments.ClaimForRegistration(ctx, id, uploaderUID, registrationID)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Lost a concurrent claim between the pre-check and the update.
			return ErrAttachmentClaimed
		}
	}
	return nil
}

// Create submits the user's registration, claiming the given attachments
// all-or-nothing. Fails with a conflict if the user already has one; the
// UNIQUE (uid) constraint backstops the pre-check under concurrency.
func (svc *RegistrationService) Create(ctx context.Context, uid int64, note *string, attachmentIDs []int64) (*models.RegistrationDetail, error) {
	existing, err := svc.reader.GetByUID(ctx, uid)
	if err != nil {
		logger.Log.Errorw("failed to check existing registration", "uid", uid, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrRegistrationExists
	}

	reg, err := svc.writer.Create(ctx, uid, note)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrRegistrationExists
		}
		logger.Log.Errorw("failed to insert registration", "uid", uid, "err", err)
		return nil, err
	}

	if err := svc.claimAll(ctx, reg.RegistrationID, uid, attachmentIDs); err != nil {
		return nil, err
	}

	return svc.detail(ctx, reg)
}

// AdminCreate submits a registration on behalf of an arbitrary uid. The
// workflow duplicate pre-check is intentionally skipped for administrative
// correction; the storage constraint still rejects a true duplicate.
func (svc *RegistrationService) AdminCreate(ctx context.Context, uid int64, note *string, attachmentIDs []int64) (*models.RegistrationDetail, error) {
	reg, err := svc.writer.Create(ctx, uid, note)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrRegistrationExists
		}
		logger.Log.Errorw("failed to insert registration", "uid", uid, "err", err)
		return nil, err
	}

	if err := svc.claimAll(ctx, reg.RegistrationID, uid, attachmentIDs); err != nil {
		return nil, err
	}

	return svc.detail(ctx, reg)
}

func (svc *RegistrationService) detail(ctx context.Context, reg *models.RegistrationDB) (*models.RegistrationDetail, error) {
	atts, err := svc.attachments.ListByRegistrationID(ctx, reg.RegistrationID)
	if err != nil {
		return nil, err
	}
	return &models.RegistrationDetail{RegistrationDB: *reg, Attachments: atts}, nil
}

// Status returns the caller's registration with its attachments.
func (svc *RegistrationService) Status(ctx context.Context, uid int64) (*models.RegistrationDetail, error) {
	reg, err := svc.reader.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrRegistrationNotFound
	}
	return svc.detail(ctx, reg)
}

// GetByID returns a registration with its attachments.
func (svc *RegistrationService) GetByID(ctx context.Context, registrationID int64) (*models.RegistrationDetail, error) {
	reg, err := svc.reader.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrRegistrationNotFound
	}
	return svc.detail(ctx, reg)
}

// List returns a page of registrations, newest first, with attachments, and
// the total count for the status filter.
func (svc *RegistrationService) List(ctx context.Context, status *string, page, pageSize int) ([]models.RegistrationDetail, int64, error) {
	if status != nil && !models.ValidStatus(*status) {
		return nil, 0, ErrInvalidStatus
	}

	regs, total, err := svc.reader.List(ctx, status, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	details := make([]models.RegistrationDetail, 0, len(regs))
	for i := range regs {
		d, err := svc.detail(ctx, &regs[i])
		if err != nil {
			return nil, 0, err
		}
		details = append(details, *d)
	}
	return details, total, nil
}

// Audit sets the registration status to any of the known values, including
// back to pending.
func (svc *RegistrationService) Audit(ctx context.Context, registrationID int64, status string) (*models.RegistrationDetail, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	reg, err := svc.writer.UpdateStatus(ctx, registrationID, status)
	if err != nil {
		logger.Log.Errorw("failed to update registration status", "registration_id", registrationID, "err", err)
		return nil, err
	}
	if reg == nil {
		return nil, ErrRegistrationNotFound
	}

	publishEvent(ctx, svc.events, Event{Type: EventRegistrationAudited, UID: reg.UID, Subject: reg.RegistrationID, Detail: status})

	return svc.detail(ctx, reg)
}

// UpdateNote replaces the registration note.
func (svc *RegistrationService) UpdateNote(ctx context.Context, registrationID int64, note string) (*models.RegistrationDetail, error) {
	reg, err := svc.writer.UpdateNote(ctx, registrationID, note)
	if err != nil {
		logger.Log.Errorw("failed to update registration note", "registration_id", registrationID, "err", err)
		return nil, err
	}
	if reg == nil {
		return nil, ErrRegistrationNotFound
	}
	return svc.detail(ctx, reg)
}

// Delete removes a registration and, by cascade, its attachments.
func (svc *RegistrationService) Delete(ctx context.Context, registrationID int64) error {
	rows, err := svc.writer.Delete(ctx, registrationID)
	if err != nil {
		logger.Log.Errorw("failed to delete registration", "registration_id", registrationID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrRegistrationNotFound
	}
	logger.Log.Infow("registration deleted", "registration_id", strconv.FormatInt(registrationID, 10))
	return nil
}
