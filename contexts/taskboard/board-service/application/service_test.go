package application

import (
	"strings"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	if got := normalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Fatalf("unexpected normalized email: %q", got)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "alice@example.com", "alice+tag@example.com"}
	for _, email := range valid {
		if !validEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}
	invalid := []string{"", "plain", "a@", "@b.co", "Alice Smith <alice@example.com>"}
	for _, email := range invalid {
		if validEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestValidBoundedString(t *testing.T) {
	if validBoundedString("", 32) {
		t.Fatalf("empty value must be rejected")
	}
	if validBoundedString("   ", 32) {
		t.Fatalf("blank value must be rejected")
	}
	if !validBoundedString(strings.Repeat("x", 32), 32) {
		t.Fatalf("value at the bound must be accepted")
	}
	if validBoundedString(strings.Repeat("x", 33), 32) {
		t.Fatalf("value over the bound must be rejected")
	}
}
