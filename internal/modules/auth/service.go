package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sixcities/internal/domain"
)

type Service struct {
	users UserGetter
	jwt   TokenIssuer
}

func NewService(users UserGetter, jwt TokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login checks the credentials and returns the profile with a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.UserInfo, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	info := user.Info()
	info.Token = token
	return &info, nil
}
