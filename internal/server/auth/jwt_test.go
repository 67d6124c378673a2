package auth

import (
	"testing"
	"time"
)

func TestCreateAndValidateToken(t *testing.T) {
	key := []byte("secret")

	token, err := CreateToken("alice@example.com", key, time.Hour)
	if err != nil {
		t.Fatalf("CreateToken error: %v", err)
	}

	claims := ValidateToken(token, key)
	if claims == nil {
		t.Fatalf("expected claims, got nil")
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("want email alice@example.com, got %q", claims.Email)
	}
}

func TestValidateToken_WrongKey(t *testing.T) {
	token, err := CreateToken("alice@example.com", []byte("secret"), time.Hour)
	if err != nil {
		t.Fatalf("CreateToken error: %v", err)
	}

	if claims := ValidateToken(token, []byte("other")); claims != nil {
		t.Fatalf("expected nil claims for wrong key, got %+v", claims)
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	key := []byte("secret")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if claims := ValidateToken(tok, key); claims != nil {
			t.Fatalf("expected nil claims for %q, got %+v", tok, claims)
		}
	}
}

func TestValidateToken_Expired(t *testing.T) {
	key := []byte("secret")

	token, err := CreateToken("alice@example.com", key, -time.Minute)
	if err != nil {
		t.Fatalf("CreateToken error: %v", err)
	}

	if claims := ValidateToken(token, key); claims != nil {
		t.Fatalf("expected nil claims for expired token, got %+v", claims)
	}
}

func TestCreateToken_NoExpiry(t *testing.T) {
	key := []byte("secret")

	token, err := CreateToken("alice@example.com", key, 0)
	if err != nil {
		t.Fatalf("CreateToken error: %v", err)
	}

	claims := ValidateToken(token, key)
	if claims == nil {
		t.Fatalf("expected claims, got nil")
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no expiry claim, got %v", claims.ExpiresAt)
	}
}
