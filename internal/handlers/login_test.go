package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mstepanov/evreg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	handler := NewLoginHandler(mockSvc)

	tests := []struct {
		name       string
		body       any
		mockSetup  func()
		wantStatus int
	}{
		{
			name: "success by username",
			body: LoginRequest{Username: "john_doe", Password: "secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john_doe", "", "secret123").
					Return("access-token", "refresh-token", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "success by email",
			body: LoginRequest{Email: "john@example.com", Password: "secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "", "john@example.com", "secret123").
					Return("access-token", "refresh-token", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "neither username nor email",
			body: LoginRequest{Password: "secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "", "", "secret123").
					Return("", "", services.ErrLoginRequired)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "invalid credentials",
			body: LoginRequest{Username: "john_doe", Password: "wrong"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john_doe", "", "wrong").
					Return("", "", services.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid body",
			body:       "not-json",
			mockSetup:  func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: LoginRequest{Username: "john_doe", Password: "secret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john_doe", "", "secret123").
					Return("", "", assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
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
			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
			handler(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var resp LoginResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "access-token", resp.AccessToken)
				assert.Equal(t, "refresh-token", resp.RefreshToken)
			}
		})
	}
}
