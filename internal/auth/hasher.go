package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const maxPasswordLength = 72 // bcrypt limit

// Hasher wraps bcrypt for password and refresh-token storage.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost.
func NewHasher(cost int) Hasher {
	return Hasher{cost: cost}
}

// HashPassword hashes a plaintext password.
func (h Hasher) HashPassword(password string) (string, error) {
	if len(password) > maxPasswordLength {
		return "", fmt.Errorf("password exceeds maximum length of %d characters", maxPasswordLength)
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether the password matches the stored hash.
func (Hasher) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashToken hashes a refresh token for storage. Signed tokens exceed
// bcrypt's 72-byte input limit, so the token is SHA-256 digested first.
func (h Hasher) HashToken(token string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(digestToken(token), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckToken reports whether the token matches the stored hash.
func (Hasher) CheckToken(token, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), digestToken(token)) == nil
}

func digestToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return []byte(hex.EncodeToString(sum[:]))
}
