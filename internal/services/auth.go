package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUID(ctx context.Context, uid int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error)
	ExistsByUID(ctx context.Context, uid int64) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, uid int64, username, email, passwordHash string, now time.Time) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, uid int64, passwordHash string, now time.Time) error
}

// CodeRepository stores the single live verification code per (email, type).
type CodeRepository interface {
	Get(ctx context.Context, email, codeType string) (*models.VerificationCodeDB, error)
	Upsert(ctx context.Context, email, codeType, code string, expiresAt, lastSendAt time.Time) error
	Delete(ctx context.Context, email, codeType string) error
}

// TokenIssuer creates an access/refresh token pair for a user.
type TokenIssuer interface {
	GeneratePair(ctx context.Context, uid int64) (access, refresh string, err error)
}

// CodeSender delivers a verification code to an email address.
type CodeSender interface {
	Send(ctx context.Context, email, code string) error
}

// AuthConfig carries the tunables of the auth workflow.
type AuthConfig struct {
	UIDSecret    string        // Salt for the uid allocator
	CodeTTL      time.Duration // Verification code lifetime
	CodeCooldown time.Duration // Minimum interval between sends per (email, type)
}

// AuthService orchestrates verification codes, registration, login and
// password reset over the identity store and the code ledger.
type AuthService struct {
	reader UserReader
	writer UserWriter
	codes  CodeRepository
	tokens TokenIssuer
	sender CodeSender
	events EventWriter
	cfg    AuthConfig
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, codes CodeRepository, tokens TokenIssuer, sender CodeSender, events EventWriter, cfg AuthConfig) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		codes:  codes,
		tokens: tokens,
		sender: sender,
		events: events,
		cfg:    cfg,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// randomCode draws a uniform 6-digit code from [100000, 999999].
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100_000), nil
}

// RequestCode stores a fresh verification code for (email, purpose) and
// dispatches delivery in the background. Returns the code TTL in seconds.
//
// For register the email must not belong to an existing user. For reset an
// unknown email silently succeeds without storing or sending anything, so the
// endpoint cannot be used to enumerate accounts.
func (svc *AuthService) RequestCode(ctx context.Context, email, codeType string) (int, error) {
	email = normalizeEmail(email)
	ttlSeconds := int(svc.cfg.CodeTTL.Seconds())

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to look up email", "err", err)
		return 0, err
	}

	switch codeType {
	case models.CodeTypeRegister:
		if user != nil {
			return 0, ErrEmailAlreadyRegistered
		}
	case models.CodeTypeReset:
		if user == nil {
			return ttlSeconds, nil
		}
	}

	now := time.Now()

	vc, err := svc.codes.Get(ctx, email, codeType)
	if err != nil {
		logger.Log.Errorw("failed to load verification code", "err", err)
		return 0, err
	}
	if vc != nil && now.Sub(vc.LastSendAt) < svc.cfg.CodeCooldown {
		return 0, ErrCodeRequestTooSoon
	}

	code, err := randomCode()
	if err != nil {
		return 0, err
	}

	if err := svc.codes.Upsert(ctx, email, codeType, code, now.Add(svc.cfg.CodeTTL), now); err != nil {
		logger.Log.Errorw("failed to store verification code", "err", err)
		return 0, err
	}

	// Delivery is best effort and detached from the request: a failed send is
	// logged and never surfaces to the caller.
	go func() {
		if svc.sender == nil {
			logger.Log.Warnw("mailer not configured, skipping code delivery", "email", email)
			return
		}
		if err := svc.sender.Send(context.Background(), email, code); err != nil {
			logger.Log.Errorw("failed to deliver verification code", "email", email, "err", err)
		}
	}()

	return ttlSeconds, nil
}

// checkCode validates the submitted code against the stored row.
func (svc *AuthService) checkCode(ctx context.Context, email, codeType, submitted string) error {
	vc, err := svc.codes.Get(ctx, email, codeType)
	if err != nil {
		return err
	}
	if vc == nil || vc.Code != submitted || time.Now().After(vc.ExpiresAt) {
		return ErrInvalidVerificationCode
	}
	return nil
}

// Register creates a user after validating the registration code. The code
// row is deleted in the same transaction as the insert, so a code is never
// spent without the user existing.
func (svc *AuthService) Register(ctx context.Context, username, email, password, code string) (*models.UserDB, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)

	if err := svc.checkCode(ctx, email, models.CodeTypeRegister, code); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	uid, err := generateUID(ctx, svc.cfg.UIDSecret, svc.reader.ExistsByUID)
	if err != nil {
		logger.Log.Errorw("failed to allocate uid", "err", err)
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Create(ctx, uid, username, email, hash, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	if err := svc.codes.Delete(ctx, email, models.CodeTypeRegister); err != nil {
		logger.Log.Errorw("failed to consume verification code", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, Event{Type: EventUserRegistered, UID: user.UID})

	return user, nil
}

// Login authenticates by username or email and returns a token pair.
func (svc *AuthService) Login(ctx context.Context, username, email, password string) (access, refresh string, err error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if username == "" && email == "" {
		return "", "", ErrLoginRequired
	}

	var usernameArg, emailArg *string
	if username != "" {
		usernameArg = &username
	}
	if email != "" {
		emailArg = &email
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, usernameArg, emailArg)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil || !verifyPassword(password, user.PasswordHash) {
		return "", "", ErrInvalidCredentials
	}

	access, refresh, err = svc.tokens.GeneratePair(ctx, user.UID)
	if err != nil {
		logger.Log.Errorw("failed to generate tokens", "err", err)
		return "", "", err
	}

	return access, refresh, nil
}

// ResetPassword replaces the password of the account owning the email after
// validating the reset code. Code deletion and the password write share the
// request's transaction.
func (svc *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = normalizeEmail(email)

	if err := svc.checkCode(ctx, email, models.CodeTypeReset, code); err != nil {
		return err
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, user.UID, hash, time.Now()); err != nil {
		logger.Log.Errorw("failed to update password", "err", err)
		return err
	}

	if err := svc.codes.Delete(ctx, email, models.CodeTypeReset); err != nil {
		logger.Log.Errorw("failed to consume verification code", "err", err)
		return err
	}

	return nil
}
