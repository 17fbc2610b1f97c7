package utils

import (
	"testing"
	"time"
)

func TestJWT(t *testing.T) {
	secret := "test-secret-key-12345"

	token, err := GenerateToken("user-1234", RoleAdmin, secret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("Token should not be empty")
	}

	// Test Validation (Success)
	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if claims["sub"] != "user-1234" {
		t.Errorf("Expected subject user-1234, got %v", claims["sub"])
	}
	if !CanEditRules(claims) {
		t.Error("Admin should be allowed to edit rules")
	}

	// Test Validation (Failure - Wrong Key)
	if _, err := ValidateToken(token, "wrong-key"); err == nil {
		t.Error("Validation should fail with wrong key")
	}
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateToken("user-1", RoleAdmin, "k", -time.Minute)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if _, err := ValidateToken(token, "k"); err == nil {
		t.Error("Expired token should not validate")
	}
}

func TestOperatorCannotEditRules(t *testing.T) {
	token, _ := GenerateToken("op-7", "operator", "k", time.Hour)
	claims, err := ValidateToken(token, "k")
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if CanEditRules(claims) {
		t.Error("Operator should not be allowed to edit rules")
	}
}
