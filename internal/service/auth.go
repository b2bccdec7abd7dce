package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/abdul977/lodgebooker/internal/domain"
	"github.com/abdul977/lodgebooker/internal/service/ports"
)

const (
	minPasswordLen = 6

	purposeSession = "session"
	purposeReset   = "reset"
)

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	ResetTokenTTL time.Duration
	ResetBaseURL  string
}

type AuthService struct {
	profiles ports.ProfileRepo
	notifier ports.Notifier
	cfg      AuthConfig
	logger   logger.Logger
}

func NewAuthService(profiles ports.ProfileRepo, notifier ports.Notifier, cfg AuthConfig, logger logger.Logger) *AuthService {
	return &AuthService{
		profiles: profiles,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.Profile, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	if input.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := &domain.Profile{
		ID:                    uuid.New().String(),
		Email:                 strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:          string(hash),
		FullName:              input.FullName,
		Phone:                 input.Phone,
		Address:               input.Address,
		Gender:                input.Gender,
		DateOfBirth:           input.DateOfBirth,
		CallUpNumber:          input.CallUpNumber,
		StateOfOrigin:         input.StateOfOrigin,
		LGA:                   input.LGA,
		Institution:           input.Institution,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
		NextOfKinName:         input.NextOfKinName,
		NextOfKinPhone:        input.NextOfKinPhone,
		Role:                  domain.RoleUser,
		Status:                domain.AccountActive,
		CreatedAt:             time.Now().UTC(),
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.logger.Info("profile registered",
		logger.String("profile_id", profile.ID),
	)

	return profile, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Profile, error) {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get profile: %w", err)
	}

	if profile.Status != domain.AccountActive {
		return "", nil, domain.ErrAccountNotActive
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(profile.ID, purposeSession, s.cfg.TokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, profile, nil
}

// ForgotPassword enqueues a reset mail when the account exists. It
// reports success either way so the endpoint does not leak which
// addresses are registered.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil
		}
		return fmt.Errorf("get profile: %w", err)
	}

	token, err := s.issueToken(profile.ID, purposeReset, s.cfg.ResetTokenTTL)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}

	err = s.notifier.Enqueue(ctx, domain.TemplatePasswordReset, profile.Email, domain.EmailData{
		UserName:  profile.FullName,
		ResetLink: s.cfg.ResetBaseURL + "?token=" + token,
	})
	if err != nil {
		return fmt.Errorf("enqueue reset email: %w", err)
	}

	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.parseToken(token, purposeReset)
	if err != nil {
		return fmt.Errorf("%w: invalid or expired reset token", domain.ErrValidation)
	}

	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.profiles.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.logger.Info("password reset",
		logger.String("profile_id", userID),
	)

	return nil
}

// ParseToken validates a session token and returns the profile id it
// was issued for. The token intentionally carries no role claim: roles
// are always read from the profile store at request time.
func (s *AuthService) ParseToken(token string) (string, error) {
	return s.parseToken(token, purposeSession)
}

type authClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func (s *AuthService) issueToken(userID, purpose string, ttl time.Duration) (string, error) {
	claims := authClaims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) parseToken(token, purpose string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &authClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*authClaims)
	if !ok || !parsed.Valid || claims.Purpose != purpose || claims.Subject == "" {
		return "", errors.New("invalid token")
	}

	return claims.Subject, nil
}
