package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService() *Service {
	return New(Config{
		AdminPassword: "hunter2",
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
	})
}

func TestLoginAndValidate(t *testing.T) {
	s := newTestService()

	token, err := s.Login("hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	sub, err := s.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if sub != "admin" {
		t.Fatalf("expected subject admin, got %q", sub)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestService()

	_, err := s.Login("letmein")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	s := newTestService()

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := s.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	other := New(Config{
		AdminPassword: "hunter2",
		JWTSecret:     "different-secret",
		TokenTTL:      time.Hour,
	})

	token, err := other.Login("hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	s := newTestService()
	if _, err := s.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for token signed with another secret, got %v", err)
	}
}
