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

func TestSendCodeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCodeRequester(ctrl)
	handler := NewSendCodeHandler(mockSvc, models.CodeTypeRegister)

	tests := []struct {
		name         string
		body         any
		mockSetup    func()
		wantStatus   int
		wantExpireIn int
	}{
		{
			name: "code issued",
			body: SendCodeRequest{Email: "john@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					RequestCode(gomock.Any(), "john@example.com", models.CodeTypeRegister).
					Return(300, nil)
			},
			wantStatus:   http.StatusOK,
			wantExpireIn: 300,
		},
		{
			name: "email already registered",
			body: SendCodeRequest{Email: "taken@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					RequestCode(gomock.Any(), "taken@example.com", models.CodeTypeRegister).
					Return(0, services.ErrEmailAlreadyRegistered)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "requested too soon",
			body: SendCodeRequest{Email: "john@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					RequestCode(gomock.Any(), "john@example.com", models.CodeTypeRegister).
					Return(0, services.ErrCodeRequestTooSoon)
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "empty email",
			body:       SendCodeRequest{},
			mockSetup:  func() {},
			wantStatus: http.StatusBadRequest,
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
			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/send-verification-code", bytes.NewReader(body))
			handler(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var resp SendCodeResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.wantExpireIn, resp.ExpireIn)
			}
		})
	}
}
