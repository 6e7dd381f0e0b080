package service

import (
	"context"
	"errors"
	"fmt"

	"auth_backend/internal/metrics"
	"auth_backend/internal/models"
	"auth_backend/internal/repository"

	"github.com/google/uuid"
)

// RegisterParams is the registration form as submitted.
type RegisterParams struct {
	Username        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// AuthService handles registration and login.
type AuthService struct {
	users       repository.Users
	credentials *CredentialService
}

func NewAuthService(users repository.Users, credentials *CredentialService) *AuthService {
	return &AuthService{users: users, credentials: credentials}
}

// Register validates the form, hashes the password and stores a new user.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) error {
	if p.Username == "" || p.Email == "" || p.Phone == "" || p.Password == "" || p.ConfirmPassword == "" {
		return ErrMissingFields
	}
	if p.Password != p.ConfirmPassword {
		return ErrPasswordMismatch
	}

	existing, err := s.users.FindUserByEmail(ctx, p.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	digest, err := s.credentials.Hash(p.Password)
	if err != nil {
		return err
	}

	err = s.users.AppendUser(ctx, models.User{
		ID:       uuid.NewString(),
		Username: p.Username,
		Email:    p.Email,
		Phone:    p.Phone,
		Password: digest,
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// lost a race with a concurrent registration
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("store user: %w", err)
	}

	metrics.Registrations.Inc()
	return nil
}

// Login checks the credential and returns the account's username.
// No session or token is issued.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	u, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		metrics.LoginAttempts.WithLabelValues("unknown_user").Inc()
		return "", ErrUserNotFound
	}

	if !s.credentials.Verify(password, u.Password) {
		metrics.LoginAttempts.WithLabelValues("wrong_password").Inc()
		return "", ErrWrongPassword
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	return u.Username, nil
}
