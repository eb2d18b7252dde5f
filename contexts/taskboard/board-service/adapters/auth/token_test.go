package authadapter

import (
	"testing"
	"time"
)

func TestJWTIssuerRoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	userID, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}
}

func TestJWTIssuerRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)
	other := NewJWTIssuer("different-secret", time.Hour)

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := other.Validate(token); err == nil {
		t.Fatalf("expected validation failure for wrong signing secret")
	}
}

func TestJWTIssuerRejectsExpiredToken(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := issuer.Validate(token); err == nil {
		t.Fatalf("expected validation failure for expired token")
	}
}

func TestJWTIssuerRejectsGarbage(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)

	if _, err := issuer.Validate("not.a.token"); err == nil {
		t.Fatalf("expected validation failure for malformed token")
	}
}
