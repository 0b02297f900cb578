package auth

import (
	"context"

	"donorblog/internal/domain"
)

type userReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID int64, role domain.UserRole) (string, error)
}
