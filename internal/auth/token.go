package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/config"
)

const tokenIssuer = "sponsvisa"

// TokenService signs and verifies access and refresh tokens. The two kinds
// use distinct secrets and TTLs; verification failures of any sort collapse
// to ok=false so callers treat them all as "unauthenticated". Every token
// carries a unique jti, so two tokens issued for the same user are never
// byte-identical even within the same second.
type TokenService struct {
	cfg     config.AuthConfig
	parser  *jwt.Parser
	nowFunc func() time.Time
}

// NewTokenService creates a TokenService from auth configuration.
func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{
		cfg:     cfg,
		parser:  jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})),
		nowFunc: time.Now,
	}
}

// SignAccessToken issues a short-lived access token for the user.
func (t *TokenService) SignAccessToken(userID uuid.UUID) (string, error) {
	return t.sign(userID, t.cfg.AccessTokenSecret, t.cfg.AccessTokenTTL)
}

// SignRefreshToken issues a long-lived refresh token for the user.
func (t *TokenService) SignRefreshToken(userID uuid.UUID) (string, error) {
	return t.sign(userID, t.cfg.RefreshTokenSecret, t.cfg.RefreshTokenTTL)
}

// VerifyAccessToken validates signature and expiry and returns the user id.
func (t *TokenService) VerifyAccessToken(token string) (uuid.UUID, bool) {
	return t.verify(token, t.cfg.AccessTokenSecret)
}

// VerifyRefreshToken validates signature and expiry and returns the user id.
func (t *TokenService) VerifyRefreshToken(token string) (uuid.UUID, bool) {
	return t.verify(token, t.cfg.RefreshTokenSecret)
}

func (t *TokenService) sign(userID uuid.UUID, secret string, ttl time.Duration) (string, error) {
	now := t.nowFunc()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"jti": uuid.NewString(),
		"iss": tokenIssuer,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (t *TokenService) verify(token, secret string) (uuid.UUID, bool) {
	if token == "" {
		return uuid.Nil, false
	}

	parsed, err := t.parser.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, false
	}

	expFloat, ok := claims["exp"].(float64)
	if !ok {
		return uuid.Nil, false
	}
	if time.Unix(int64(expFloat), 0).Before(t.nowFunc()) {
		return uuid.Nil, false
	}

	return userID, true
}
