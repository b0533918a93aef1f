package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mstepanov/evreg/internal/models"
	"github.com/mstepanov/evreg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	handler := NewRegisterHandler(mockSvc)

	validReq := RegisterRequest{
		Username:         "john_doe",
		Email:            "john@example.com",
		Password:         "secret123",
		VerificationCode: "314159",
	}

	tests := []struct {
		name       string
		body       any
		mockSetup  func()
		wantStatus int
	}{
		{
			name: "created",
			body: validReq,
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "john_doe", "john@example.com", "secret123", "314159").
					Return(&models.UserDB{UID: 123456, Username: "john_doe", Email: "john@example.com"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "invalid verification code",
			body: validReq,
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, services.ErrInvalidVerificationCode)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate user",
			body: validReq,
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, services.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid body",
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
			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
			handler(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp RegisterResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, int64(123456), resp.UID)
				assert.Equal(t, "john_doe", resp.Username)
			}
		})
	}
}
