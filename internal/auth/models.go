package auth

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization level of a user.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"

	// RoleAny is a route policy sentinel: any authenticated user may pass,
	// regardless of role. It is never stored on a user.
	RoleAny Role = "ANY"
)

// User represents an application user.
type User struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Role             Role      `json:"role"`
	IsVerified       bool      `json:"isVerified"`
	RefreshTokenHash *string   `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
}

// SafeUser removes sensitive fields for response payloads.
func (u User) SafeUser() User {
	u.PasswordHash = ""
	u.RefreshTokenHash = nil
	return u
}

// Verification is a pending email verification code. At most one row exists
// per user; the expiry doubles as the resend rate limit.
type Verification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      string
	ExpiresAt time.Time
}

// TokenPair bundles access and refresh tokens.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Principal is the authenticated identity the guard attaches to the request
// context for downstream handlers.
type Principal struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Role       Role
	IsVerified bool
}
