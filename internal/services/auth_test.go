package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mstepanov/evreg/internal/models"
	"github.com/mstepanov/evreg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(ctrl *gomock.Controller) (*services.AuthService, *services.MockUserReader, *services.MockUserWriter, *services.MockCodeRepository, *services.MockTokenIssuer) {
	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockCodes := services.NewMockCodeRepository(ctrl)
	mockTokens := services.NewMockTokenIssuer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockCodes, mockTokens, nil, nil, services.AuthConfig{
		UIDSecret:    "test-secret",
		CodeTTL:      5 * time.Minute,
		CodeCooldown: time.Minute,
	})
	return svc, mockReader, mockWriter, mockCodes, mockTokens
}

func TestAuthService_RequestCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, _, mockCodes, _ := newAuthService(ctrl)

	t.Run("register rejects known email", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "taken@example.com").
			Return(&models.UserDB{UID: 123456, Email: "taken@example.com"}, nil)

		_, err := svc.RequestCode(context.Background(), "Taken@Example.com", models.CodeTypeRegister)
		assert.ErrorIs(t, err, services.ErrEmailAlreadyRegistered)
	})

	t.Run("reset silently succeeds for unknown email", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, nil)

		expireIn, err := svc.RequestCode(context.Background(), "ghost@example.com", models.CodeTypeReset)
		assert.NoError(t, err)
		assert.Equal(t, 300, expireIn)
	})

	t.Run("cooldown not elapsed", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "john@example.com").
			Return(nil, nil)
		mockCodes.EXPECT().
			Get(gomock.Any(), "john@example.com", models.CodeTypeRegister).
			Return(&models.VerificationCodeDB{
				Email:      "john@example.com",
				Type:       models.CodeTypeRegister,
				Code:       "123456",
				ExpiresAt:  time.Now().Add(4 * time.Minute),
				LastSendAt: time.Now().Add(-10 * time.Second),
			}, nil)

		_, err := svc.RequestCode(context.Background(), "john@example.com", models.CodeTypeRegister)
		assert.ErrorIs(t, err, services.ErrCodeRequestTooSoon)
	})

	t.Run("cooldown elapsed overwrites code", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "john@example.com").
			Return(nil, nil)
		mockCodes.EXPECT().
			Get(gomock.Any(), "john@example.com", models.CodeTypeRegister).
			Return(&models.VerificationCodeDB{
				Email:      "john@example.com",
				Type:       models.CodeTypeRegister,
				Code:       "123456",
				ExpiresAt:  time.Now().Add(-time.Minute),
				LastSendAt: time.Now().Add(-2 * time.Minute),
			}, nil)
		mockCodes.EXPECT().
			Upsert(gomock.Any(), "john@example.com", models.CodeTypeRegister, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		expireIn, err := svc.RequestCode(context.Background(), "john@example.com", models.CodeTypeRegister)
		assert.NoError(t, err)
		assert.Equal(t, 300, expireIn)
	})

	t.Run("first request stores code", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "new@example.com").
			Return(nil, nil)
		mockCodes.EXPECT().
			Get(gomock.Any(), "new@example.com", models.CodeTypeRegister).
			Return(nil, nil)
		mockCodes.EXPECT().
			Upsert(gomock.Any(), "new@example.com", models.CodeTypeRegister, gomock.Len(6), gomock.Any(), gomock.Any()).
			Return(nil)

		expireIn, err := svc.RequestCode(context.Background(), "new@example.com", models.CodeTypeRegister)
		assert.NoError(t, err)
		assert.Equal(t, 300, expireIn)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, mockWriter, mockCodes, _ := newAuthService(ctrl)

	username := "john_doe"
	email := "john@example.com"

	validCode := &models.VerificationCodeDB{
		Email:      email,
		Type:       models.CodeTypeRegister,
		Code:       "654321",
		ExpiresAt:  time.Now().Add(4 * time.Minute),
		LastSendAt: time.Now(),
	}

	t.Run("invalid code", func(t *testing.T) {
		mockCodes.EXPECT().
			Get(gomock.Any(), email, models.CodeTypeRegister).
			Return(nil, nil)

		_, err := svc.Register(context.Background(), username, email, "pass123", "654321")
		assert.ErrorIs(t, err, services.ErrInvalidVerificationCode)
	})

	t.Run("expired code", func(t *testing.T) {
		mockCodes.EXPECT().
			Get(gomock.Any(), email, models.CodeTypeRegister).
			Return(&models.VerificationCodeDB{
				Email:     email,
				Type:      models.CodeTypeRegister,
				Code:      "654321",
				ExpiresAt: time.Now().Add(-time.Second),
			}, nil)

		_, err := svc.Register(context.Background(), username, email, "pass123", "654321")
		assert.ErrorIs(t, err, services.ErrInvalidVerificationCode)
	})

	t.Run("wrong code", func(t *testing.T) {
		mockCodes.EXPECT().
			Get(gomock.Any(), email, models.CodeTypeRegister).
			Return(validCode, nil)

		_, err := svc.Register(context.Background(), username, email, "pass123", "000000")
		assert.ErrorIs(t, err, services.ErrInvalidVerificationCode)
	})

	t.Run("user already exists", func(t *testing.T) {
		mockCodes.EXPECT().
			Get(gomock.Any(), email, models.CodeTypeRegister).
			Return(validCode, nil)
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, &email).
			Return(&models.UserDB{UID: 777777, Username: username}, nil)

		_, err := svc.Register(context.Background(), username, email, "pass123", "654321")
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	})

	t.Run("successful registration consumes code", func(t *testing.T) {
		mockCodes.EXPECT().
			Get(gomock.Any(), email, models.CodeTypeRegister).
			Return(validCode, nil)
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, &email).
			Return(nil, nil)
		mockReader.EXPECT().
			ExistsByUID(gomock.Any(), gomock.Any()).
			Return(false, nil).
			AnyTimes()
		mockWriter.EXPECT().
			Create(gomock.Any(), gomock.Any(), username, email, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, uid int64, username, email, hash string, now time.Time) (*models.UserDB, error) {
				assert.Greater(t, uid, int64(100_000))
				assert.Less(t, uid, int64(1_000_000))
				return &models.UserDB{UID: uid, Username: username, Email: email, PasswordHash: hash}, nil
			})
		mockCodes.EXPECT().
			Delete(gomock.Any(), email, models.CodeTypeRegister).
			Return(nil)

		user, err := svc.Register(context.Background(), username, email, "pass123", "654321")
		require.NoError(t, err)
		assert.Equal(t, username, user.Username)
		assert.Equal(t, email, user.Email)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, mockWriter, mockCodes, mockTokens := newAuthService(ctrl)
	_ = mockWriter
	_ = mockCodes

	username := "alice"
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.UserDB{UID: 314159, Username: username, PasswordHash: string(hashed)}

	t.Run("neither username nor email", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "", "", "secret")
		assert.ErrorIs(t, err, services.ErrLoginRequired)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, (*string)(nil)).
			Return(nil, nil)

		_, _, err := svc.Login(context.Background(), username, "", "secret")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, (*string)(nil)).
			Return(user, nil)

		_, _, err := svc.Login(context.Background(), username, "", "wrongpass")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("successful login by username", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, (*string)(nil)).
			Return(user, nil)
		mockTokens.EXPECT().
			GeneratePair(gomock.Any(), int64(314159)).
			Return("ACCESS", "REFRESH", nil)

		access, refresh, err := svc.Login(context.Background(), username, "", "secret")
		assert.NoError(t, err)
		assert.Equal(t, "ACCESS", access)
		assert.Equal(t, "REFRESH", refresh)
	})

	t.Run("token error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, (*string)(nil)).
			Return(user, nil)
		mockTokens.EXPECT().
			GeneratePair(gomock.Any(), int64(314159)).
			Return("", "", errors.New("sign error"))

		_, _, err := svc.Login(context.Background(), username, "", "secret")
		assert.EqualError(t, err, "sign error")
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, mockWriter, mockCodes, _ := newAuthService(ctrl)

	email := "john@example.com"
	validCode := &models.VerificationCodeDB{
		Email:     email,
		Type:      models.CodeTypeReset,
		Code:      "111222",
		ExpiresAt: time.Now().Add(4 * time.Minute),
	}

	t.Run("invalid code", func(t *testing.T) {
		mockCodes.EXPECT().
			Get(gomock.Any(), email, models.CodeTypeReset).
			Return(nil, nil)

		err := svc.ResetPassword(context.Background(), email, "111222", "newpass")
		assert.ErrorIs(t, err, services.ErrInvalidVerificationCode)
	})

	t.Run("unknown account", func(t *testing.T) {
		mockCodes.EXPECT().
			Get(gomock.Any(), email, models.CodeTypeReset).
			Return(validCode, nil)
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), email).
			Return(nil, nil)

		err := svc.ResetPassword(context.Background(), email, "111222", "newpass")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("successful reset consumes code", func(t *testing.T) {
		mockCodes.EXPECT().
			Get(gomock.Any(), email, models.CodeTypeReset).
			Return(validCode, nil)
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), email).
			Return(&models.UserDB{UID: 314159, Email: email}, nil)
		mockWriter.EXPECT().
			UpdatePassword(gomock.Any(), int64(314159), gomock.Any(), gomock.Any()).
			Return(nil)
		mockCodes.EXPECT().
			Delete(gomock.Any(), email, models.CodeTypeReset).
			Return(nil)

		err := svc.ResetPassword(context.Background(), email, "111222", "newpass")
		assert.NoError(t, err)
	})
}
