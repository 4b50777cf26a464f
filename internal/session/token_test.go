package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", time.Hour)
	addr := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	tok, err := codec.Issue(addr)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	payload, err := codec.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if payload.WalletAddress != addr {
		t.Fatalf("wallet mismatch: got %q want %q", payload.WalletAddress, addr)
	}
	if payload.Subject != addr {
		t.Fatalf("subject mismatch: got %q want %q", payload.Subject, addr)
	}
	if !payload.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", payload.ExpiresAt)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", -1*time.Second)
	tok, err := codec.Issue("0xABC")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = codec.Verify(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewCodec("right-secret", time.Hour).Issue("0xABC")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewCodec("wrong-secret", time.Hour).Verify(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := codec.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

// A well-signed token missing the walletAddress claim is still invalid:
// shape is part of the contract.
func TestVerify_MissingClaims(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	claims := jwt.MapClaims{
		"sub": "0xABC",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := NewCodec(secret, time.Hour).Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing claims, got %v", err)
	}
}

// Expired and tampered tokens must be indistinguishable to callers.
func TestVerify_NoOracle(t *testing.T) {
	t.Parallel()

	expired, err := NewCodec("super-secret", -time.Minute).Issue("0xABC")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	tampered, err := NewCodec("other-secret", time.Hour).Issue("0xABC")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	codec := NewCodec("super-secret", time.Hour)
	_, errExpired := codec.Verify(expired)
	_, errTampered := codec.Verify(tampered)
	if errExpired != errTampered {
		t.Fatalf("expected identical errors, got %v vs %v", errExpired, errTampered)
	}
}
