package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(Config{
		Secret:         "test-secret-key-not-for-production",
		Issuer:         "inkline-test",
		ExpirationMins: 15,
	})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func TestNewService_RequiresSecret(t *testing.T) {
	_, err := NewService(Config{Issuer: "x", ExpirationMins: 15})
	if !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
}

func TestSignAndValidate(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Sign("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("expected a three-part JWT, got %q", token)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("expected user ID user-123, got %s", claims.UserID)
	}
	if claims.Email != "test@example.com" {
		t.Errorf("expected email test@example.com, got %s", claims.Email)
	}
	if claims.Issuer != "inkline-test" {
		t.Errorf("expected issuer inkline-test, got %s", claims.Issuer)
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	svc := newTestService(t)
	svc.expiration = -time.Minute

	token, err := svc.Sign("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	svc := newTestService(t)
	other, _ := NewService(Config{Secret: "a-different-secret", Issuer: "inkline-test", ExpirationMins: 15})

	token, err := other.Sign("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_Garbage(t *testing.T) {
	svc := newTestService(t)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(tok); err == nil {
			t.Errorf("expected error for token %q", tok)
		}
	}
}
