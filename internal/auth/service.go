package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/metrics"
	"go.uber.org/zap"
)

// userStore abstracts user persistence.
type userStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (User, error)
	FindUserByEmail(ctx context.Context, email string) (User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (User, error)
	UpdateRefreshTokenHash(ctx context.Context, id uuid.UUID, hash *string) error
}

// codeSender triggers a verification code for a freshly registered user.
type codeSender interface {
	SendCode(ctx context.Context, user User) error
}

// Service orchestrates register, login, refresh, and logout flows.
type Service struct {
	store  userStore
	tokens *TokenService
	hasher Hasher
	codes  codeSender
	log    *zap.Logger
}

// NewService creates a Service with dependencies.
func NewService(store userStore, tokens *TokenService, hasher Hasher, codes codeSender, log *zap.Logger) *Service {
	return &Service{
		store:  store,
		tokens: tokens,
		hasher: hasher,
		codes:  codes,
		log:    log,
	}
}

// RegisterInput carries data for user registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult contains the user and the issued token pair.
type AuthResult struct {
	User   User
	Tokens TokenPair
}

// Register creates a new unverified user and triggers a verification code.
// The created entity is never returned.
func (s *Service) Register(ctx context.Context, input RegisterInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := s.store.FindUserByEmail(ctx, email)
	if err == nil {
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("find user: %w", err)
	}

	hashedPassword, err := s.hasher.HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, input.Name, email, hashedPassword)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	metrics.RegistrationsTotal.Inc()

	// Registration must not block on code delivery.
	go func() {
		if err := s.codes.SendCode(context.Background(), user); err != nil {
			s.log.Warn("send verification code after register",
				zap.String("user_id", user.ID.String()), zap.Error(err))
		}
	}()

	return nil
}

// Login authenticates credentials and issues a fresh token pair. The stored
// refresh token hash is overwritten, so only the newest refresh token is
// ever valid for a user.
func (s *Service) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return AuthResult{}, ErrIncorrectCredentials
		}
		return AuthResult{}, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.CheckPassword(input.Password, user.PasswordHash) {
		return AuthResult{}, ErrIncorrectCredentials
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}

	metrics.LoginsTotal.Inc()
	return result, nil
}

// Refresh validates a refresh token and rotates the pair. Any failure is
// reported as ErrUnauthorized; a token whose hash no longer matches the
// stored one has been rotated out (or revoked) and is rejected.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	userID, ok := s.tokens.VerifyRefreshToken(refreshToken)
	if !ok {
		return AuthResult{}, ErrUnauthorized
	}

	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return AuthResult{}, ErrUnauthorized
		}
		return AuthResult{}, fmt.Errorf("find user: %w", err)
	}

	if user.RefreshTokenHash == nil || !s.hasher.CheckToken(refreshToken, *user.RefreshTokenHash) {
		return AuthResult{}, ErrUnauthorized
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the stored refresh token hash, making logout authoritative
// rather than a cookie-clearing formality.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.UpdateRefreshTokenHash(ctx, userID, nil); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

type tokenBundle struct {
	AccessToken  string
	RefreshToken string
	RefreshHash  string
}

// generateTokens produces the access token, refresh token, and the refresh
// token's hash together so the persisted hash always matches what was issued.
func (s *Service) generateTokens(userID uuid.UUID) (tokenBundle, error) {
	accessToken, err := s.tokens.SignAccessToken(userID)
	if err != nil {
		return tokenBundle{}, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken, err := s.tokens.SignRefreshToken(userID)
	if err != nil {
		return tokenBundle{}, fmt.Errorf("sign refresh token: %w", err)
	}

	refreshHash, err := s.hasher.HashToken(refreshToken)
	if err != nil {
		return tokenBundle{}, fmt.Errorf("hash refresh token: %w", err)
	}

	return tokenBundle{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		RefreshHash:  refreshHash,
	}, nil
}

func (s *Service) issueTokens(ctx context.Context, user User) (AuthResult, error) {
	bundle, err := s.generateTokens(user.ID)
	if err != nil {
		return AuthResult{}, err
	}

	if err := s.store.UpdateRefreshTokenHash(ctx, user.ID, &bundle.RefreshHash); err != nil {
		return AuthResult{}, fmt.Errorf("store refresh token hash: %w", err)
	}

	return AuthResult{
		User: user.SafeUser(),
		Tokens: TokenPair{
			AccessToken:  bundle.AccessToken,
			RefreshToken: bundle.RefreshToken,
		},
	}, nil
}
