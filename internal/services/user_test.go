package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mstepanov/evreg/internal/models"
	"github.com/mstepanov/evreg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)

	svc := services.NewUserService(mockReader, mockWriter)

	user := &models.UserDB{UID: 123456, Username: "john_doe", Email: "john@example.com"}

	t.Run("username taken", func(t *testing.T) {
		newName := "other_user"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &newName, gomock.Nil()).
			Return(&models.UserDB{UID: 777777, Username: newName}, nil)

		_, err := svc.UpdateProfile(context.Background(), user, &newName, nil, nil, nil)
		assert.ErrorIs(t, err, services.ErrUsernameTaken)
	})

	t.Run("bio update keeps username", func(t *testing.T) {
		bio := "Gopher"
		mockWriter.EXPECT().
			UpdateProfile(gomock.Any(), int64(123456), "john_doe", &bio, gomock.Nil(), gomock.Nil(), gomock.Any()).
			Return(&models.UserDB{UID: 123456, Username: "john_doe", Bio: &bio}, nil)

		updated, err := svc.UpdateProfile(context.Background(), user, nil, &bio, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Gopher", *updated.Bio)
	})

	t.Run("rename to free username", func(t *testing.T) {
		newName := "john_new"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &newName, gomock.Nil()).
			Return(nil, nil)
		mockWriter.EXPECT().
			UpdateProfile(gomock.Any(), int64(123456), newName, gomock.Nil(), gomock.Nil(), gomock.Nil(), gomock.Any()).
			Return(&models.UserDB{UID: 123456, Username: newName}, nil)

		updated, err := svc.UpdateProfile(context.Background(), user, &newName, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, newName, updated.Username)
	})
}
