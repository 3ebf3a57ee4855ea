package auth

import (
	"errors"
	"testing"
	"time"

	"vaxreg/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	identityID := "identity-123"

	tok, err := GenerateToken(identityID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got, err := GetIdentityIDFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetIdentityIDFromToken error: %v", err)
	}
	if got != identityID {
		t.Fatalf("identity id mismatch: got %q want %q", got, identityID)
	}
}

func TestGetIdentityIDFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("i1", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetIdentityIDFromToken(tok, secret)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestGetIdentityIDFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("i2", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetIdentityIDFromToken(tok, []byte("wrong-secret"))
	if err == nil {
		t.Fatalf("expected error for wrong secret, got nil")
	}
}

func TestGetIdentityIDFromToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := GetIdentityIDFromToken("not-a-token", []byte("secret"))
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
