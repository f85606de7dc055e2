package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "candidate@example.com", time.Hour)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch")
	}
	if claims.Email != "candidate@example.com" {
		t.Fatalf("email mismatch")
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := NewHMACService("test-secret")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateToken(uuid.New(), "", time.Hour)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	token, err := NewHMACService("secret-a").GenerateToken(uuid.New(), "", time.Hour)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := NewHMACService("secret-b").ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
