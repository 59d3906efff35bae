package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt rejects inputs longer than 72 bytes.
const maxPasswordLength = 72

// HashPassword hashes a plaintext password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordLength {
		return "", fmt.Errorf("password exceeds %d bytes", maxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
