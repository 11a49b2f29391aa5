package security

import (
	"errors"
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateSessionToken("secret", 7, "admin@example.com", "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, errParse := ParseSessionToken("secret", token)
	if errParse != nil {
		t.Fatalf("parse: %v", errParse)
	}
	if claims.UserID != 7 || claims.Email != "admin@example.com" || claims.Role != "ADMIN" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateSessionToken("secret", 7, "admin@example.com", "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, errParse := ParseSessionToken("other-secret", token); !errors.Is(errParse, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", errParse)
	}
}

func TestParseSessionTokenExpired(t *testing.T) {
	t.Parallel()

	token, err := GenerateSessionToken("secret", 7, "admin@example.com", "ADMIN", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, errParse := ParseSessionToken("secret", token); !errors.Is(errParse, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", errParse)
	}
}

func TestParseSessionTokenGarbage(t *testing.T) {
	t.Parallel()

	if _, errParse := ParseSessionToken("secret", "not-a-jwt"); errParse == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("sifre123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "sifre123") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "yanlis") {
		t.Fatal("wrong password accepted")
	}
}
