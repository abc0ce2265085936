package services

import (
	"testing"
	"time"

	"coffeepos/pkg/apperr"
	"coffeepos/repository"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newTestAuth(t)

	user, err := auth.Register("Anna@Example.com", "secret1", "Anna", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "anna@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.Role != "customer" {
		t.Errorf("default role: want customer, got %q", user.Role)
	}

	token, _, err := auth.Login("anna@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Error("empty token")
	}

	_, _, err = auth.Login("anna@example.com", "wrong")
	if !apperr.IsKind(err, apperr.Auth) {
		t.Errorf("want auth error for bad password, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newTestAuth(t)

	if _, err := auth.Register("bob@example.com", "secret1", "Bob", "staff"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := auth.Register("bob@example.com", "secret2", "Bobby", "")
	if !apperr.IsKind(err, apperr.Auth) {
		t.Errorf("want auth error for duplicate, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	auth := newTestAuth(t)

	if _, err := auth.Register("not-an-email", "secret1", "X", ""); !apperr.IsKind(err, apperr.Validation) {
		t.Errorf("want validation error for bad email, got %v", err)
	}
	if _, err := auth.Register("x@example.com", "123", "X", ""); !apperr.IsKind(err, apperr.Validation) {
		t.Errorf("want validation error for short password, got %v", err)
	}
	if _, err := auth.Register("x@example.com", "secret1", "X", "boss"); !apperr.IsKind(err, apperr.Validation) {
		t.Errorf("want validation error for bad role, got %v", err)
	}
}

func TestSetRole(t *testing.T) {
	auth := newTestAuth(t)

	user, err := auth.Register("carol@example.com", "secret1", "Carol", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, err := auth.SetRole(user.ID, "staff")
	if err != nil {
		t.Fatalf("set role: %v", err)
	}
	if updated.Role != "staff" {
		t.Errorf("want staff, got %q", updated.Role)
	}

	if _, err := auth.SetRole(user.ID, "boss"); !apperr.IsKind(err, apperr.Validation) {
		t.Errorf("want validation error for bad role, got %v", err)
	}
}
