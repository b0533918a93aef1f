package services

import (
	"context"
	"strings"
	"time"

	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/models"
)

// ProfileWriter persists user profile updates.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, uid int64, username string, bio, phone, avatarURL *string, now time.Time) (*models.UserDB, error)
}

// UserService handles profile reads and updates.
type UserService struct {
	reader UserReader
	writer ProfileWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer ProfileWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

// UpdateProfile applies the provided fields to the user's profile. A username
// change is checked for conflicts first; nil fields keep their current value.
func (svc *UserService) UpdateProfile(ctx context.Context, user *models.UserDB, username *string, bio, phone, avatarURL *string) (*models.UserDB, error) {
	newUsername := user.Username
	if username != nil && strings.TrimSpace(*username) != "" && *username != user.Username {
		newUsername = strings.TrimSpace(*username)
		existing, err := svc.reader.GetByUsernameOrEmail(ctx, &newUsername, nil)
		if err != nil {
			logger.Log.Errorw("failed to check username", "err", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrUsernameTaken
		}
	}

	newBio := user.Bio
	if bio != nil {
		newBio = bio
	}
	newPhone := user.Phone
	if phone != nil {
		newPhone = phone
	}
	newAvatar := user.AvatarURL
	if avatarURL != nil {
		newAvatar = avatarURL
	}

	updated, err := svc.writer.UpdateProfile(ctx, user.UID, newUsername, newBio, newPhone, newAvatar, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		logger.Log.Errorw("failed to update profile", "uid", user.UID, "err", err)
		return nil, err
	}
	return updated, nil
}
