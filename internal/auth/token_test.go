package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("test-signing-secret"), time.Hour)

	tok, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", claims.ExpiresAt)
	}
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("test-signing-secret"), time.Hour)

	tok, err := svc.IssueWithTTL("user-123", -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyWrongKey(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService([]byte("right-signing-secret"), time.Hour)
	verifier := NewTokenService([]byte("wrong-signing-secret"), time.Hour)

	tok, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(tok); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("test-signing-secret"), time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := svc.Verify(raw); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("Verify(%q): expected ErrMalformedToken, got %v", raw, err)
		}
	}
}
