package authadapter

import "testing"

func TestBcryptHasherVerify(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("strong password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "strong password" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !hasher.Verify(hash, "strong password") {
		t.Fatalf("expected matching password to verify")
	}
	if hasher.Verify(hash, "wrong password") {
		t.Fatalf("expected mismatched password to fail")
	}
}
