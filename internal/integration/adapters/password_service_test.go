// Package adapters implements adapter interfaces from the application layer.
package adapters

import "testing"

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash differs from the plaintext", func(t *testing.T) {
		hash, err := service.HashPassword("correct-horse")
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		if hash == "correct-horse" {
			t.Error("hash must not equal the plaintext")
		}
	})

	t.Run("verify roundtrip", func(t *testing.T) {
		hash, err := service.HashPassword("correct-horse")
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}

		if err := service.VerifyPassword(hash, "correct-horse"); err != nil {
			t.Errorf("expected the original password to verify: %v", err)
		}
		if err := service.VerifyPassword(hash, "wrong-password"); err == nil {
			t.Error("expected a wrong password to fail verification")
		}
	})

	t.Run("strength validation", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("short"); err == nil {
			t.Error("expected a 5-character password to be rejected")
		}
		if err := service.ValidatePasswordStrength("long-enough"); err != nil {
			t.Errorf("expected an 11-character password to pass: %v", err)
		}
	})
}
