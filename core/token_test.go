package core

import (
	"errors"
	"testing"
	"time"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)

	tok, err := tm.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok == "" {
		t.Fatal("Issue returned empty token")
	}

	got, err := tm.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != 42 {
		t.Fatalf("subject mismatch: got %d want 42", got)
	}
}

func TestTokenManager_ExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("secret", -1*time.Second)
	tok, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	verifier := NewTokenManager("secret", time.Hour)
	if _, err := verifier.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenManager_WrongSecretRejected(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", time.Hour).Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewTokenManager("wrong-secret", time.Hour).Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenManager_MalformedTokenRejected(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		if _, err := tm.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestTokenManager_DistinctSecretsAreIsolated(t *testing.T) {
	t.Parallel()

	a := NewTokenManager("secret-a", time.Hour)
	b := NewTokenManager("secret-b", time.Hour)

	tokA, err := a.Issue(5)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := b.Verify(tokA); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("token signed with secret-a must not verify under secret-b, got %v", err)
	}
	if got, err := a.Verify(tokA); err != nil || got != 5 {
		t.Fatalf("round-trip under same secret failed: got %d, %v", got, err)
	}
}
