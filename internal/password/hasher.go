// Package password hashes and verifies user secrets.
package password

import "strings"

// Supported algorithm names, as used in configuration.
const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// Hasher produces salted one-way digests.
type Hasher interface {
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. An error means the
	// digest could not be parsed.
	Verify(password, digest string) (bool, error)

	// Owns reports whether digest has this hasher's format.
	Owns(digest string) bool
}

// New returns the hasher for algorithm. Unknown names fall back to bcrypt.
func New(algorithm string, bcryptCost int) Hasher {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case AlgorithmArgon2id:
		return NewArgon2Hasher(nil)
	default:
		return NewBcryptHasher(bcryptCost)
	}
}
