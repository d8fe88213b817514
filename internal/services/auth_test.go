package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmolinero/biblioteca-api/internal/models"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockJWT := NewMockTokenGenerator(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockJWT)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := &models.UserDB{ID: 7, Email: "ana@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name      string
		email     string
		password  string
		mockSetup func()
		wantToken string
		wantErr   error
	}{
		{
			name:     "success",
			email:    "ana@example.com",
			password: "Password123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "ana@example.com").
					Return(user, nil)
				mockJWT.EXPECT().
					Generate(gomock.Any(), int64(7)).
					Return("JWT_TOKEN", nil)
			},
			wantToken: "JWT_TOKEN",
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "Password123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "nobody@example.com").
					Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:     "wrong password",
			email:    "ana@example.com",
			password: "wrong",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "ana@example.com").
					Return(user, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "store failure",
			email:    "ana@example.com",
			password: "Password123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "ana@example.com").
					Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name:     "token generation failure",
			email:    "ana@example.com",
			password: "Password123",
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "ana@example.com").
					Return(user, nil)
				mockJWT.EXPECT().
					Generate(gomock.Any(), int64(7)).
					Return("", errors.New("signing failed"))
			},
			wantErr: errors.New("signing failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			token, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_UpdatePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockJWT := NewMockTokenGenerator(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockJWT)
	ctx := context.Background()

	user := &models.UserDB{ID: 7, Email: "ana@example.com", PasswordHash: "old-hash"}

	t.Run("success stores a bcrypt hash of the new password", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "ana@example.com").
			Return(user, nil)
		mockWriter.EXPECT().
			UpdatePasswordHash(gomock.Any(), "ana@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("NewPassword123")))
				return nil
			})

		err := svc.UpdatePassword(ctx, "ana@example.com", "NewPassword123")
		assert.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, nil)

		err := svc.UpdatePassword(ctx, "nobody@example.com", "NewPassword123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("write failure surfaces", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "ana@example.com").
			Return(user, nil)
		mockWriter.EXPECT().
			UpdatePasswordHash(gomock.Any(), "ana@example.com", gomock.Any()).
			Return(errors.New("db down"))

		err := svc.UpdatePassword(ctx, "ana@example.com", "NewPassword123")
		assert.EqualError(t, err, "db down")
	})
}
