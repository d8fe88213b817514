package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/dmolinero/biblioteca-api/internal/services"
)

func TestUpdatePasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPasswordUpdater(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			inputBody: UpdatePasswordRequest{
				Email:    "ana@example.com",
				Password: "NewPassword123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdatePassword(gomock.Any(), "ana@example.com", "NewPassword123").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "Password updated successfully",
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "missing password",
			inputBody: UpdatePasswordRequest{
				Email: "ana@example.com",
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			inputBody: UpdatePasswordRequest{
				Email:    "nobody@example.com",
				Password: "NewPassword123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdatePassword(gomock.Any(), "nobody@example.com", "NewPassword123").
					Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "internal error",
			inputBody: UpdatePasswordRequest{
				Email:    "ana@example.com",
				Password: "NewPassword123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdatePassword(gomock.Any(), "ana@example.com", "NewPassword123").
					Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	handler := NewUpdatePasswordHandler(mockSvc)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body []byte
			switch v := tt.inputBody.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/update-password", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}
