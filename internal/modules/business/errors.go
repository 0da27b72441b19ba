package business

import "errors"

var (
	// ErrNotFound is returned when no business profile exists for the owner.
	ErrNotFound = errors.New("business owner not found")

	// ErrNotBusinessOwner is returned when the user's role does not permit a profile.
	ErrNotBusinessOwner = errors.New("user must be a business owner")

	// ErrAlreadyOnboarded is returned when the user already has a profile.
	ErrAlreadyOnboarded = errors.New("business profile already exists")

	// ErrMissingFields is returned when a required profile field is empty.
	ErrMissingFields = errors.New("business_name and address are required")
)
