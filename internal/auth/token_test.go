package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService(testAuthConfig())
	userID := uuid.New()

	access, err := tokens.SignAccessToken(userID)
	if err != nil {
		t.Fatalf("sign access token: %v", err)
	}
	refresh, err := tokens.SignRefreshToken(userID)
	if err != nil {
		t.Fatalf("sign refresh token: %v", err)
	}

	if got, ok := tokens.VerifyAccessToken(access); !ok || got != userID {
		t.Fatalf("access token round trip failed: ok=%v id=%s", ok, got)
	}
	if got, ok := tokens.VerifyRefreshToken(refresh); !ok || got != userID {
		t.Fatalf("refresh token round trip failed: ok=%v id=%s", ok, got)
	}
}

func TestTokensAreUniquePerIssue(t *testing.T) {
	tokens := NewTokenService(testAuthConfig())
	userID := uuid.New()

	// pin the clock so both tokens share sub, iss, iat, and exp; only the
	// jti may tell them apart
	now := time.Now()
	tokens.nowFunc = func() time.Time { return now }

	first, err := tokens.SignRefreshToken(userID)
	if err != nil {
		t.Fatalf("sign refresh token: %v", err)
	}
	second, err := tokens.SignRefreshToken(userID)
	if err != nil {
		t.Fatalf("sign refresh token: %v", err)
	}

	if first == second {
		t.Fatalf("two tokens issued in the same instant must not be identical")
	}
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	tokens := NewTokenService(testAuthConfig())
	userID := uuid.New()

	access, err := tokens.SignAccessToken(userID)
	if err != nil {
		t.Fatalf("sign access token: %v", err)
	}
	refresh, err := tokens.SignRefreshToken(userID)
	if err != nil {
		t.Fatalf("sign refresh token: %v", err)
	}

	if _, ok := tokens.VerifyRefreshToken(access); ok {
		t.Fatalf("access token accepted as refresh token")
	}
	if _, ok := tokens.VerifyAccessToken(refresh); ok {
		t.Fatalf("refresh token accepted as access token")
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	tokens := NewTokenService(testAuthConfig())

	other := testAuthConfig()
	other.AccessTokenSecret = "a-different-secret"
	otherTokens := NewTokenService(other)

	access, err := tokens.SignAccessToken(uuid.New())
	if err != nil {
		t.Fatalf("sign access token: %v", err)
	}

	if _, ok := otherTokens.VerifyAccessToken(access); ok {
		t.Fatalf("token signed with a different secret was accepted")
	}
}

func TestTokenExpiryRejected(t *testing.T) {
	tokens := NewTokenService(testAuthConfig())
	userID := uuid.New()

	access, err := tokens.SignAccessToken(userID)
	if err != nil {
		t.Fatalf("sign access token: %v", err)
	}

	tokens.nowFunc = func() time.Time {
		return time.Now().Add(2 * time.Minute)
	}

	if _, ok := tokens.VerifyAccessToken(access); ok {
		t.Fatalf("expired access token was accepted")
	}
}

func TestTokenGarbageRejected(t *testing.T) {
	tokens := NewTokenService(testAuthConfig())

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, ok := tokens.VerifyAccessToken(token); ok {
			t.Fatalf("malformed token %q was accepted", token)
		}
	}
}
