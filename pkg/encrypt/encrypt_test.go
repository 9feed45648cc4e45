package encrypt

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("12345678abc")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "12345678abc" {
		t.Fatal("hash should not equal plaintext")
	}
	if !VerifyPassword("12345678abc", hash) {
		t.Fatal("expected password to verify")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Fatal("wrong password should not verify")
	}
}
