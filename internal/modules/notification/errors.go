package notification

import "errors"

var (
	// ErrNotFound covers both missing notifications and notifications owned
	// by someone else.
	ErrNotFound = errors.New("notification not found")

	// ErrMissingFields is returned when a required field is empty.
	ErrMissingFields = errors.New("type, title and message are required")
)
