package utils

import (
	"testing"
	"time"
)

func init() {
	SetJWTSecret("test-secret-key-for-testing")
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(1, "testuser", "admin", 24)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if token == "" {
		t.Error("GenerateToken() returned empty token")
	}

	if len(token) < 50 {
		t.Errorf("token seems too short: %d chars", len(token))
	}
}

func TestGenerateToken_DifferentTokens(t *testing.T) {
	token1, _ := GenerateToken(1, "user1", "admin", 24)
	token2, _ := GenerateToken(2, "user2", "user", 24)

	if token1 == token2 {
		t.Error("different users should produce different tokens")
	}
}

func TestParseToken(t *testing.T) {
	userID := uint(42)
	username := "testuser"
	role := "admin"

	token, _ := GenerateToken(userID, username, role, 24)

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %d, expected %d", claims.UserID, userID)
	}
	if claims.Username != username {
		t.Errorf("Username = %q, expected %q", claims.Username, username)
	}
	if claims.Role != role {
		t.Errorf("Role = %q, expected %q", claims.Role, role)
	}
}

func TestParseToken_Invalid(t *testing.T) {
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("ParseToken() should fail for garbage input")
	}
}

func TestParseToken_Expiry(t *testing.T) {
	token, _ := GenerateToken(1, "testuser", "user", 24)
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	if claims.ExpiresAt == nil {
		t.Fatal("token has no expiry")
	}
	until := time.Until(claims.ExpiresAt.Time)
	if until < 23*time.Hour || until > 25*time.Hour {
		t.Errorf("expiry should be ~24h out, got %v", until)
	}
}
