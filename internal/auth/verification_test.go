package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sponsvisa/sponsvisa-api/internal/apperr"
	"github.com/sponsvisa/sponsvisa-api/internal/config"
	"go.uber.org/zap"
)

func testVerificationConfig() config.VerificationConfig {
	return config.VerificationConfig{
		CodeAlphabet: "0123456789",
		CodeLength:   6,
		ExpireTime:   5 * time.Minute,
	}
}

type verificationFixture struct {
	store   *memoryStore
	mailer  *recordingMailer
	service *VerificationService
	user    User
}

func newVerificationFixture(t *testing.T) *verificationFixture {
	t.Helper()

	store := newMemoryStore()
	mailer := newRecordingMailer()
	service := NewVerificationService(store, store, mailer, testVerificationConfig(), zap.NewNop())

	user, err := store.CreateUser(context.Background(), "Test User", "user@example.com", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	return &verificationFixture{store: store, mailer: mailer, service: service, user: user}
}

// pendingCode returns the code currently stored for the fixture user.
func (f *verificationFixture) pendingCode(t *testing.T) string {
	t.Helper()
	v, err := f.store.FindVerificationByUserID(context.Background(), f.user.ID)
	if err != nil {
		t.Fatalf("expected a pending verification: %v", err)
	}
	return v.Code
}

func TestSendCodeStoresAndMails(t *testing.T) {
	f := newVerificationFixture(t)

	if err := f.service.SendCode(context.Background(), f.user); err != nil {
		t.Fatalf("send code: %v", err)
	}

	code := f.pendingCode(t)
	if len(code) != 6 {
		t.Fatalf("expected a 6 digit code, got %q", code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("code %q contains a character outside the alphabet", code)
		}
	}

	select {
	case m := <-f.mailer.sent:
		if m.to != f.user.Email {
			t.Fatalf("mail sent to %q, want %q", m.to, f.user.Email)
		}
		if !strings.Contains(m.body, code) {
			t.Fatalf("mail body does not contain the stored code")
		}
	case <-time.After(time.Second):
		t.Fatalf("expected a verification mail")
	}
}

func TestSendCodeRateLimited(t *testing.T) {
	f := newVerificationFixture(t)

	if err := f.service.SendCode(context.Background(), f.user); err != nil {
		t.Fatalf("send code: %v", err)
	}
	first := f.pendingCode(t)

	err := f.service.SendCode(context.Background(), f.user)
	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected a domain error while the code is still valid, got %v", err)
	}
	if !strings.Contains(domainErr.Message, "5 minute") {
		t.Fatalf("wait message should name the full remaining window, got %q", domainErr.Message)
	}

	// the original code stands
	if f.pendingCode(t) != first {
		t.Fatalf("rate limited request must not replace the pending code")
	}
}

func TestSendCodeWaitAtExpiryBoundary(t *testing.T) {
	f := newVerificationFixture(t)

	base := time.Now()
	f.service.nowFunc = func() time.Time { return base }

	if err := f.service.SendCode(context.Background(), f.user); err != nil {
		t.Fatalf("send code: %v", err)
	}

	// exactly at the expiry instant the code is still valid; the wait
	// message must not claim zero minutes
	f.service.nowFunc = func() time.Time { return base.Add(5 * time.Minute) }

	err := f.service.SendCode(context.Background(), f.user)
	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected a domain error at the expiry boundary, got %v", err)
	}
	if !strings.Contains(domainErr.Message, "1 minute") {
		t.Fatalf("expected a one minute wait at the boundary, got %q", domainErr.Message)
	}
}

func TestSendCodeReplacesExpired(t *testing.T) {
	f := newVerificationFixture(t)

	if err := f.service.SendCode(context.Background(), f.user); err != nil {
		t.Fatalf("send code: %v", err)
	}
	first := f.pendingCode(t)

	f.service.nowFunc = func() time.Time {
		return time.Now().Add(6 * time.Minute)
	}

	if err := f.service.SendCode(context.Background(), f.user); err != nil {
		t.Fatalf("send code after expiry: %v", err)
	}

	// the expired code must no longer verify
	if err := f.service.VerifyCode(context.Background(), f.user.ID, first); !errors.Is(err, ErrCodeInvalid) {
		t.Fatalf("expected ErrCodeInvalid for the replaced code, got %v", err)
	}
}

func TestVerifyCode(t *testing.T) {
	f := newVerificationFixture(t)

	if err := f.service.SendCode(context.Background(), f.user); err != nil {
		t.Fatalf("send code: %v", err)
	}
	code := f.pendingCode(t)

	if err := f.service.VerifyCode(context.Background(), f.user.ID, code); err != nil {
		t.Fatalf("verify code: %v", err)
	}

	user, err := f.store.FindUserByID(context.Background(), f.user.ID)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if !user.IsVerified {
		t.Fatalf("expected user to be verified")
	}

	// the consumed record is gone
	if _, err := f.store.FindVerificationByUserID(context.Background(), f.user.ID); !errors.Is(err, ErrVerificationNotFound) {
		t.Fatalf("expected verification record to be consumed, got %v", err)
	}

	// a second attempt with the same code is rejected, not idempotent
	if err := f.service.VerifyCode(context.Background(), f.user.ID, code); !errors.Is(err, ErrAlreadyVerified) {
		t.Fatalf("expected ErrAlreadyVerified on repeat, got %v", err)
	}
}

func TestVerifyCodeWrongCode(t *testing.T) {
	f := newVerificationFixture(t)

	if err := f.service.SendCode(context.Background(), f.user); err != nil {
		t.Fatalf("send code: %v", err)
	}

	if err := f.service.VerifyCode(context.Background(), f.user.ID, "000000x"); !errors.Is(err, ErrCodeInvalid) {
		t.Fatalf("expected ErrCodeInvalid, got %v", err)
	}

	user, _ := f.store.FindUserByID(context.Background(), f.user.ID)
	if user.IsVerified {
		t.Fatalf("wrong code must not verify the user")
	}
}

func TestVerifyCodeExpired(t *testing.T) {
	f := newVerificationFixture(t)

	if err := f.service.SendCode(context.Background(), f.user); err != nil {
		t.Fatalf("send code: %v", err)
	}
	code := f.pendingCode(t)

	f.service.nowFunc = func() time.Time {
		return time.Now().Add(6 * time.Minute)
	}

	if err := f.service.VerifyCode(context.Background(), f.user.ID, code); !errors.Is(err, ErrCodeInvalid) {
		t.Fatalf("expected ErrCodeInvalid for an expired code, got %v", err)
	}
}

func TestResendCodeAlreadyVerified(t *testing.T) {
	f := newVerificationFixture(t)

	user := f.store.users[f.user.ID]
	user.IsVerified = true
	f.store.users[f.user.ID] = user

	if err := f.service.ResendCode(context.Background(), f.user.ID); !errors.Is(err, ErrAlreadyVerified) {
		t.Fatalf("expected ErrAlreadyVerified, got %v", err)
	}
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type recordingMailer struct {
	sent chan sentMail
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{sent: make(chan sentMail, 4)}
}

func (r *recordingMailer) Send(ctx context.Context, to, subject, body string) error {
	r.sent <- sentMail{to: to, subject: subject, body: body}
	return nil
}
