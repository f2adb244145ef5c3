package token

import (
	"testing"
	"time"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewJWTManager("secret", 1, 1)

	access, err := m.GenerateToken(7, "admin@example.com", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken err: %v", err)
	}
	claims, err := m.VerifyToken(access)
	if err != nil {
		t.Fatalf("VerifyToken err: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "admin@example.com" || claims.Role != "ADMIN" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.TokenType != TypeAccess {
		t.Fatalf("expected access token, got %q", claims.TokenType)
	}

	refresh, _ := m.GenerateRefreshToken(7, "admin@example.com", "ADMIN")
	rclaims, err := m.VerifyToken(refresh)
	if err != nil {
		t.Fatalf("VerifyToken(refresh) err: %v", err)
	}
	if rclaims.TokenType != TypeRefresh {
		t.Fatalf("expected refresh token, got %q", rclaims.TokenType)
	}
	if !rclaims.ExpiresAt.Time.After(claims.ExpiresAt.Time) {
		t.Fatal("refresh token should outlive access token")
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	tok, _ := NewJWTManager("one", 1, 1).GenerateToken(1, "a@b.c", "ADMIN")
	if _, err := NewJWTManager("two", 1, 1).VerifyToken(tok); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := &JWTManager{secretKey: []byte("s"), accessTokenDur: -time.Minute}
	tok, err := m.GenerateToken(1, "a@b.c", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken err: %v", err)
	}
	if _, err := m.VerifyToken(tok); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestGenerateRandomString(t *testing.T) {
	a, b := GenerateRandomString(16), GenerateRandomString(16)
	if len(a) != 32 {
		t.Fatalf("expected 32 hex chars, got %d", len(a))
	}
	if a == b {
		t.Fatal("expected distinct values")
	}
}
