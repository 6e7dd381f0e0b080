package service

import (
	"context"

	"auth_backend/internal/mailer"
	"auth_backend/internal/password"
	"auth_backend/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, p RegisterParams) error
	Login(ctx context.Context, email, password string) (string, error)
}

// PasswordReset issues reset codes by email and checks them.
type PasswordReset interface {
	Issue(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) (bool, error)
}

// Deps carries what NewService needs beyond the repositories.
type Deps struct {
	Hasher password.Hasher
	Sender mailer.Sender
	Reset  ResetOptions
}

// Service aggregates the sub-services used by the HTTP layer.
type Service struct {
	Authorization
	PasswordReset
}

func NewService(repos *repository.Repository, deps Deps) *Service {
	credentials := NewCredentialService(deps.Hasher)
	return &Service{
		Authorization: NewAuthService(repos.Users, credentials),
		PasswordReset: NewResetCodeService(repos.Users, repos.ResetCodes, deps.Sender, deps.Reset),
	}
}
