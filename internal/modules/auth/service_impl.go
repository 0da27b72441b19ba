package auth

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/mwaledev/lastbite-backend/internal/modules/user"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	userRepo user.Repository
	secret   []byte
	expiry   time.Duration
}

// NewService creates a new auth service. The secret signs HS256 tokens and
// expiry bounds their lifetime.
func NewService(userRepo user.Repository, secret string, expiry time.Duration) Service {
	return &service{userRepo: userRepo, secret: []byte(secret), expiry: expiry}
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !u.IsActive {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := &jwt.StandardClaims{
		Subject:   u.Email,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
