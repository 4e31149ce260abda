package token

import (
	"testing"
	"time"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

func TestGenerateValidateRoundTrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	signed, err := svc.Generate(42, models.RoleOwner)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.Validate(signed)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if claims.Role != models.RoleOwner {
		t.Errorf("role = %q, want owner", claims.Role)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	if _, err := svc.Generate(0, models.RoleUser); err == nil {
		t.Error("expected error for zero user id")
	}
	if _, err := svc.Generate(42, models.Role("admin")); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	signed, err := issuer.Generate(7, models.RoleUser)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.Validate(signed); err == nil {
		t.Error("expected signature verification failure")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	svc.expiresIn = -time.Hour

	signed, err := svc.Generate(7, models.RoleUser)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.Validate(signed); err == nil {
		t.Error("expected expiry failure")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	if _, err := svc.Validate("not-a-token"); err == nil {
		t.Error("expected parse failure")
	}
}
