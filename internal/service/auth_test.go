package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/abdul977/lodgebooker/internal/domain"
	"github.com/abdul977/lodgebooker/internal/service/ports/mocks"
)

func newAuthService(t *testing.T, profiles *mocks.MockProfileRepo, notifier *mocks.MockNotifier) *AuthService {
	t.Helper()
	return NewAuthService(profiles, notifier, AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		ResetTokenTTL: time.Hour,
		ResetBaseURL:  "http://localhost:8080/reset-password",
	}, newTestLogger(t))
}

func TestAuthService_Register_Success(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := newAuthService(t, profiles, notifier)

	profiles.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	profile, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "Ada@Example.com",
		Password: "secret1",
		FullName: "Ada Obi",
	})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, domain.RoleUser, profile.Role)
	assert.Equal(t, domain.AccountActive, profile.Status)
	assert.NotEmpty(t, profile.ID)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte("secret1")))
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := newAuthService(t, profiles, notifier)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "ada@example.com",
		Password: "123",
		FullName: "Ada Obi",
	})

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Login_Success(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := newAuthService(t, profiles, notifier)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	profile := &domain.Profile{
		ID:           "u1",
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Status:       domain.AccountActive,
	}
	profiles.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(profile, nil)

	token, got, err := svc.Login(context.Background(), "ada@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, profile, got)

	userID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := newAuthService(t, profiles, notifier)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	profile := &domain.Profile{
		ID:           "u1",
		PasswordHash: string(hash),
		Status:       domain.AccountActive,
	}
	profiles.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(profile, nil)

	_, _, err = svc.Login(context.Background(), "ada@example.com", "wrong")

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := newAuthService(t, profiles, notifier)

	profiles.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrProfileNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := newAuthService(t, profiles, notifier)

	profile := &domain.Profile{ID: "u1", Status: domain.AccountDisabled}
	profiles.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(profile, nil)

	_, _, err := svc.Login(context.Background(), "ada@example.com", "secret1")

	require.ErrorIs(t, err, domain.ErrAccountNotActive)
}

func TestAuthService_ForgotPassword_UnknownEmailSilent(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := newAuthService(t, profiles, notifier)

	profiles.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrProfileNotFound)

	require.NoError(t, svc.ForgotPassword(context.Background(), "ghost@example.com"))
}

func TestAuthService_ForgotAndResetPassword_Roundtrip(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := newAuthService(t, profiles, notifier)

	profile := &domain.Profile{
		ID:       "u1",
		Email:    "ada@example.com",
		FullName: "Ada Obi",
		Status:   domain.AccountActive,
	}
	profiles.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(profile, nil)

	var resetLink string
	notifier.EXPECT().Enqueue(mock.Anything, domain.TemplatePasswordReset, "ada@example.com", mock.Anything).
		Run(func(args mock.Arguments) {
			resetLink = args.Get(3).(domain.EmailData).ResetLink
		}).
		Return(nil)

	require.NoError(t, svc.ForgotPassword(context.Background(), "ada@example.com"))
	require.NotEmpty(t, resetLink)

	// The token rides in the link's query string.
	token := resetLink[len("http://localhost:8080/reset-password?token="):]

	profiles.EXPECT().UpdatePassword(mock.Anything, "u1", mock.Anything).Return(nil)

	require.NoError(t, svc.ResetPassword(context.Background(), token, "newsecret"))
}

func TestAuthService_ResetPassword_SessionTokenRejected(t *testing.T) {
	profiles := mocks.NewMockProfileRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := newAuthService(t, profiles, notifier)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	profile := &domain.Profile{
		ID:           "u1",
		PasswordHash: string(hash),
		Status:       domain.AccountActive,
	}
	profiles.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(profile, nil)

	token, _, err := svc.Login(context.Background(), "ada@example.com", "secret1")
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), token, "newsecret")

	require.ErrorIs(t, err, domain.ErrValidation)
}
