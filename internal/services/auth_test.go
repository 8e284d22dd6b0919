package services

import (
	"errors"
	"testing"
	"time"

	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, username, email, password, role string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Username: username, Email: email, PasswordHash: string(hash), Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", 30*time.Minute)
	createUser(t, db, "prof.martin", "martin@mergington.edu", "teacher123", models.RoleTeacher)

	t.Run("unknown_username", func(t *testing.T) {
		if _, _, err := svc.Login("prof.nobody", "teacher123"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		if _, _, err := svc.Login("prof.martin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("correct_credentials", func(t *testing.T) {
		token, user, err := svc.Login("prof.martin", "teacher123")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if token == "" {
			t.Fatal("empty token")
		}
		if user.Role != models.RoleTeacher {
			t.Fatalf("role = %q, want teacher", user.Role)
		}
	})
}

func TestTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	user := &models.User{Username: "prof.martin", Role: models.RoleTeacher}

	t.Run("valid_until_expiry", func(t *testing.T) {
		svc := NewAuthService(db, "test-secret", 30*time.Minute)
		token, err := svc.GenerateToken(user)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		identity, err := svc.ValidateToken(token)
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		if identity.Username != "prof.martin" || identity.Role != models.RoleTeacher {
			t.Fatalf("identity = %+v", identity)
		}
	})

	t.Run("rejected_after_expiry", func(t *testing.T) {
		svc := NewAuthService(db, "test-secret", -time.Minute)
		token, err := svc.GenerateToken(user)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if _, err := svc.ValidateToken(token); err == nil {
			t.Fatal("expired token accepted")
		}
	})

	t.Run("rejected_with_wrong_secret", func(t *testing.T) {
		issuer := NewAuthService(db, "test-secret", 30*time.Minute)
		verifier := NewAuthService(db, "other-secret", 30*time.Minute)
		token, err := issuer.GenerateToken(user)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if _, err := verifier.ValidateToken(token); err == nil {
			t.Fatal("token with wrong signature accepted")
		}
	})

	t.Run("rejected_garbage", func(t *testing.T) {
		svc := NewAuthService(db, "test-secret", 30*time.Minute)
		if _, err := svc.ValidateToken("not-a-token"); err == nil {
			t.Fatal("garbage token accepted")
		}
	})
}
