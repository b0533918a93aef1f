package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mstepanov/evreg/internal/middlewares"
	"github.com/mstepanov/evreg/internal/models"
	"github.com/mstepanov/evreg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedRequest(method, target string, body []byte, user *models.UserDB) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	if user != nil {
		r = r.WithContext(middlewares.SetUserToContext(r.Context(), user))
	}
	return r
}

func TestCreateRegistrationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegistrationCreator(ctrl)
	handler := NewCreateRegistrationHandler(mockSvc)

	user := &models.UserDB{UID: 123456, Username: "john_doe"}

	tests := []struct {
		name       string
		user       *models.UserDB
		body       any
		mockSetup  func()
		wantStatus int
	}{
		{
			name: "created",
			user: user,
			body: CreateRegistrationRequest{AttachmentIDs: []int64{5}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(123456), gomock.Nil(), []int64{5}).
					Return(&models.RegistrationDetail{
						RegistrationDB: models.RegistrationDB{RegistrationID: 1, UID: 123456, Status: models.StatusPending},
						Attachments:    []models.AttachmentDB{{ID: 5}},
					}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unauthenticated",
			user:       nil,
			body:       CreateRegistrationRequest{},
			mockSetup:  func() {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "already registered",
			user: user,
			body: CreateRegistrationRequest{},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(123456), gomock.Nil(), gomock.Nil()).
					Return(nil, services.ErrRegistrationExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "attachment not found",
			user: user,
			body: CreateRegistrationRequest{AttachmentIDs: []int64{99}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(123456), gomock.Nil(), []int64{99}).
					Return(nil, services.ErrAttachmentNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "attachment of another user",
			user: user,
			body: CreateRegistrationRequest{AttachmentIDs: []int64{7}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(123456), gomock.Nil(), []int64{7}).
					Return(nil, services.ErrAttachmentForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "attachment already linked",
			user: user,
			body: CreateRegistrationRequest{AttachmentIDs: []int64{7}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), int64(123456), gomock.Nil(), []int64{7}).
					Return(nil, services.ErrAttachmentClaimed)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid body",
			user:       user,
			body:       "not-json",
			mockSetup:  func() {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body []byte
			switch v := tt.body.(type) {
			case string:
				body = []byte(v)
			default:
				var err error
				body, err = json.Marshal(v)
				require.NoError(t, err)
			}

			w := httptest.NewRecorder()
			r := authedRequest(http.MethodPost, "/api/v1/registration", body, tt.user)
			handler(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp models.RegistrationDetail
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, models.StatusPending, resp.Status)
				assert.Len(t, resp.Attachments, 1)
			}
		})
	}
}

func TestRegistrationStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegistrationStatuser(ctrl)
	handler := NewRegistrationStatusHandler(mockSvc)

	user := &models.UserDB{UID: 123456, Username: "john_doe"}

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().
			Status(gomock.Any(), int64(123456)).
			Return(&models.RegistrationDetail{
				RegistrationDB: models.RegistrationDB{RegistrationID: 1, UID: 123456, Status: models.StatusApproved},
			}, nil)

		w := httptest.NewRecorder()
		handler(w, authedRequest(http.MethodGet, "/api/v1/registration/status", nil, user))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.RegistrationDetail
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, models.StatusApproved, resp.Status)
	})

	t.Run("no registration", func(t *testing.T) {
		mockSvc.EXPECT().
			Status(gomock.Any(), int64(123456)).
			Return(nil, services.ErrRegistrationNotFound)

		w := httptest.NewRecorder()
		handler(w, authedRequest(http.MethodGet, "/api/v1/registration/status", nil, user))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler(w, authedRequest(http.MethodGet, "/api/v1/registration/status", nil, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
