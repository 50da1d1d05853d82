package token

import (
	"errors"
	"testing"
	"time"

	"github.com/taskforge/backend/domain"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)
	userID := "user-123"

	tok, err := issuer.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	gotUserID, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer := &Issuer{secret: []byte("secret"), ttl: -time.Minute}

	tok, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = issuer.Verify(tok)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected domain.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer("right-secret", time.Hour).Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewIssuer("wrong-secret", time.Hour).Verify(tok)
	if err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer("k", time.Hour).Verify("not.a.jwt")
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("k", 0)
	if issuer.ttl != DefaultTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTTL, issuer.ttl)
	}
}
