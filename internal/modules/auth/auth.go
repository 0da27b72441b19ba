package auth

import "context"

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login exchanges credentials for a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}
