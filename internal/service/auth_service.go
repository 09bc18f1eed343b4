package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gav1n0112/keya/internal/auth"
	"github.com/Gav1n0112/keya/internal/config"
	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/Gav1n0112/keya/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Bootstrap creates the administrator record with the configured default
// credentials if none exists yet. Running it again is a no-op.
func (s *AuthService) Bootstrap(ctx context.Context) error {
	_, err := s.userRepo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to load user record: %w", err)
	}

	hashed, err := auth.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username:     s.cfg.AdminUsername,
		PasswordHash: hashed,
		UpdatedAt:    time.Now(),
	}
	return s.userRepo.Save(ctx, user)
}

// Login verifies the credentials against the stored administrator record
// and issues a signed bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if user.Username != username {
		return "", ErrInvalidCredentials
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	ttl := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	return auth.GenerateToken(user.Username, []byte(s.cfg.JWTSecret), ttl)
}

// ChangePassword rotates the administrator password after verifying the
// current one.
func (s *AuthService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	user, err := s.userRepo.Get(ctx)
	if err != nil {
		return err
	}

	ok, err := auth.VerifyPassword(currentPassword, user.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hashed
	user.UpdatedAt = time.Now()
	return s.userRepo.Save(ctx, user)
}

// ValidateToken checks the token signature and expiry and returns the bound
// username.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	return auth.ParseToken(tokenString, []byte(s.cfg.JWTSecret))
}
