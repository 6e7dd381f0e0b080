package service

import (
	"errors"
	"fmt"

	"auth_backend/internal/password"
)

var errEmptyPassword = errors.New("password is empty")

// CredentialService hashes new passwords with the configured algorithm and
// verifies digests of any supported format.
type CredentialService struct {
	primary password.Hasher
	all     []password.Hasher
}

func NewCredentialService(primary password.Hasher) *CredentialService {
	return &CredentialService{
		primary: primary,
		all: []password.Hasher{
			primary,
			password.NewBcryptHasher(0),
			password.NewArgon2Hasher(nil),
		},
	}
}

func (s *CredentialService) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errEmptyPassword
	}
	digest, err := s.primary.Hash(plaintext)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return digest, nil
}

// Verify is false for a mismatch and for any digest that cannot be parsed.
func (s *CredentialService) Verify(plaintext, digest string) bool {
	for _, h := range s.all {
		if !h.Owns(digest) {
			continue
		}
		ok, err := h.Verify(plaintext, digest)
		return err == nil && ok
	}
	return false
}
