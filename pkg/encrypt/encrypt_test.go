package encrypt

import "testing"

func TestHashAndVerify(t *testing.T) {
	hashed, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "password123" {
		t.Fatal("hash must not equal plaintext")
	}

	if !VerifyPassword(hashed, "password123") {
		t.Error("expected verification to succeed")
	}
	if VerifyPassword(hashed, "wrong-password") {
		t.Error("expected verification to fail for wrong password")
	}
}
