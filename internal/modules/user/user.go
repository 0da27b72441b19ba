package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role determines what a user may do. It is fixed at signup.
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleBusinessOwner Role = "business_owner"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleBusinessOwner
}

// User represents an account in the system.
// @Description User information
// @Description with id, email, name, phone, role, is_active, and created_at
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type ctxKey struct{}

// NewContext returns a context carrying the authenticated user.
func NewContext(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// FromContext extracts the authenticated user set by the auth middleware.
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*User)
	return u, ok
}
