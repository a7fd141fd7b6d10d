package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := IssueToken(secret, 42, "curator", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	identity, err := VerifyToken(secret, token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if identity.UserID != 42 || identity.Username != "curator" {
		t.Fatalf("identity = %+v", identity)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := IssueToken([]byte("secret-a"), 1, "admin", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if _, err := VerifyToken([]byte("secret-b"), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong secret accepted: %v", err)
	}
}

func TestTokenExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := IssueToken(secret, 1, "admin", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if _, err := VerifyToken(secret, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token accepted: %v", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := VerifyToken([]byte("secret"), "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage token accepted: %v", err)
	}
}
