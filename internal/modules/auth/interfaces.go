package auth

import (
	"context"

	"sixcities/internal/repository"
)

type UserGetter interface {
	GetByEmail(ctx context.Context, email string) (*repository.UserRow, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, email string) (string, error)
}
