package service

import (
	"context"
	"sync"

	"auth_backend/internal/mailer"
	"auth_backend/internal/models"
	"auth_backend/internal/password"
	"auth_backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// memUsers is an in-test implementation of repository.Users.
type memUsers struct {
	mu        sync.Mutex
	users     []models.User
	findErr   error
	appendErr error

	appendCalls int
}

func (m *memUsers) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, u := range m.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memUsers) AppendUser(_ context.Context, u models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appendCalls++
	if m.appendErr != nil {
		return m.appendErr
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.users = append(m.users, u)
	return nil
}

// memCodes is an in-test implementation of repository.ResetCodes.
type memCodes struct {
	byEmail    map[string]models.ResetCode
	replaceErr error
	findErr    error
}

func newMemCodes() *memCodes {
	return &memCodes{byEmail: map[string]models.ResetCode{}}
}

func (m *memCodes) FindResetCode(_ context.Context, email, code string) (*models.ResetCode, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	rc, ok := m.byEmail[email]
	if !ok || rc.Code != code {
		return nil, nil
	}
	return &rc, nil
}

func (m *memCodes) ReplaceResetCode(_ context.Context, rc models.ResetCode) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.byEmail[rc.Email] = rc
	return nil
}

type fakeSender struct {
	sent []mailer.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func newTestCredentials() *CredentialService {
	return NewCredentialService(password.NewBcryptHasher(bcrypt.MinCost))
}

func validUserWithDigest(digest string) models.User {
	return models.User{ID: "u-1", Username: "ana", Email: "ana@x.com", Phone: "123", Password: digest}
}
