package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"donorblog/internal/domain"
)

type fakeUserReader struct {
	user *domain.User
}

func (f *fakeUserReader) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.user == nil || f.user.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return f.user, nil
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, role domain.UserRole) (string, error) {
	return "token-for-" + string(role), nil
}

func staffUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &domain.User{
		ID:           1,
		Email:        "staff@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleStaff,
	}
}

func TestLogin_Success(t *testing.T) {
	svc := NewService(&fakeUserReader{user: staffUser(t, "secret123")}, fakeJWT{})

	result, err := svc.Login(context.Background(), "Staff@Example.com ", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token != "token-for-staff" {
		t.Fatalf("unexpected token: %s", result.Token)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(&fakeUserReader{user: staffUser(t, "secret123")}, fakeJWT{})

	_, err := svc.Login(context.Background(), "staff@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(&fakeUserReader{}, fakeJWT{})

	_, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
