package user

import "errors"

var (
	// ErrNotFound is returned when no matching user exists.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidRole is returned when the signup role is not a known role.
	ErrInvalidRole = errors.New("invalid role")

	// ErrMissingFields is returned when a required signup field is empty.
	ErrMissingFields = errors.New("email, password and name are required")
)
