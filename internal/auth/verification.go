package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/sponsvisa/sponsvisa-api/internal/config"
	"github.com/sponsvisa/sponsvisa-api/internal/mail"
	"github.com/sponsvisa/sponsvisa-api/internal/metrics"
	"go.uber.org/zap"
)

// verificationStore abstracts verification code persistence.
type verificationStore interface {
	FindVerificationByUserID(ctx context.Context, userID uuid.UUID) (Verification, error)
	FindVerificationByUserAndCode(ctx context.Context, userID uuid.UUID, code string) (Verification, error)
	CreateVerification(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error
	DeleteVerification(ctx context.Context, id uuid.UUID) error
	// ConsumeVerification marks the user verified and deletes the record in
	// one transaction.
	ConsumeVerification(ctx context.Context, userID, verificationID uuid.UUID) error
}

// VerificationService manages email verification codes. A user's code moves
// through none -> pending -> (expired -> pending) -> consumed; the stored
// expiry doubles as the resend rate limit.
type VerificationService struct {
	store   verificationStore
	users   userStore
	mailer  mail.Mailer
	cfg     config.VerificationConfig
	log     *zap.Logger
	nowFunc func() time.Time
}

// NewVerificationService creates a VerificationService with dependencies.
func NewVerificationService(store verificationStore, users userStore, mailer mail.Mailer, cfg config.VerificationConfig, log *zap.Logger) *VerificationService {
	return &VerificationService{
		store:   store,
		users:   users,
		mailer:  mailer,
		cfg:     cfg,
		log:     log,
		nowFunc: time.Now,
	}
}

// SendCode issues a fresh code for the user. A still-valid pending code
// rejects the request with the minutes left to wait; an expired one is
// replaced. The record is persisted before the mail is dispatched, and mail
// failure never rolls it back.
func (s *VerificationService) SendCode(ctx context.Context, user User) error {
	existing, err := s.store.FindVerificationByUserID(ctx, user.ID)
	switch {
	case err == nil:
		if !s.isExpired(existing.ExpiresAt) {
			return errWaitForNextCode(s.minutesToWait(existing.ExpiresAt))
		}
		if err := s.store.DeleteVerification(ctx, existing.ID); err != nil {
			return fmt.Errorf("delete expired verification: %w", err)
		}
	case errors.Is(err, ErrVerificationNotFound):
		// first code for this user
	default:
		return fmt.Errorf("find verification: %w", err)
	}

	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	expiresAt := s.nowFunc().Add(s.cfg.ExpireTime)
	if err := s.store.CreateVerification(ctx, user.ID, code, expiresAt); err != nil {
		if errors.Is(err, ErrVerificationExists) {
			// lost the race to a concurrent request; its code stands
			return errWaitForNextCode(int(math.Ceil(s.cfg.ExpireTime.Minutes())))
		}
		return fmt.Errorf("create verification: %w", err)
	}

	metrics.VerificationCodesSentTotal.Inc()

	go s.dispatch(user, code)

	return nil
}

// VerifyCode consumes a pending code, marking the user verified. Absent and
// expired codes surface the same generic error.
func (s *VerificationService) VerifyCode(ctx context.Context, userID uuid.UUID, code string) error {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	if user.IsVerified {
		return ErrAlreadyVerified
	}

	verification, err := s.store.FindVerificationByUserAndCode(ctx, user.ID, code)
	if err != nil {
		if errors.Is(err, ErrVerificationNotFound) {
			return ErrCodeInvalid
		}
		return fmt.Errorf("find verification: %w", err)
	}

	if s.isExpired(verification.ExpiresAt) {
		return ErrCodeInvalid
	}

	if err := s.store.ConsumeVerification(ctx, user.ID, verification.ID); err != nil {
		return fmt.Errorf("consume verification: %w", err)
	}

	return nil
}

// ResendCode is the user-initiated entry point for requesting a new code.
func (s *VerificationService) ResendCode(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	if user.IsVerified {
		return ErrAlreadyVerified
	}

	return s.SendCode(ctx, user)
}

func (s *VerificationService) dispatch(user User, code string) {
	subject := "Sponsvisa Verification Code"
	body := fmt.Sprintf("Welcome %s!\n\nHere is your verification code: %s\n", user.Name, code)

	if err := s.mailer.Send(context.Background(), user.Email, subject, body); err != nil {
		s.log.Warn("send verification email",
			zap.String("user_id", user.ID.String()), zap.Error(err))
	}
}

func (s *VerificationService) generateCode() (string, error) {
	alphabet := s.cfg.CodeAlphabet
	max := big.NewInt(int64(len(alphabet)))

	code := make([]byte, s.cfg.CodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = alphabet[n.Int64()]
	}
	return string(code), nil
}

// isExpired is strict: a code is valid up to and including its expiry instant.
func (s *VerificationService) isExpired(expiresAt time.Time) bool {
	return s.nowFunc().After(expiresAt)
}

// minutesToWait never reports less than one minute; at the expiry boundary
// the code is still valid but ceil would round the remainder down to zero.
func (s *VerificationService) minutesToWait(expiresAt time.Time) int {
	minutes := int(math.Ceil(expiresAt.Sub(s.nowFunc()).Minutes()))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
