// Package auth derives and verifies password credentials. Passwords are
// never stored; only a random per-user salt and a PBKDF2-derived key are
// persisted.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	iterations = 100_000
	keyLength  = 16
)

// GenerateSalt returns 16 random bytes for a new credential.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// HashPassword derives the stored key for a password and salt.
func HashPassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
}

// Verify reports whether password matches the stored salt/hash pair.
// The comparison is constant-time.
func Verify(password string, salt, hash []byte) bool {
	return hmac.Equal(HashPassword(password, salt), hash)
}
