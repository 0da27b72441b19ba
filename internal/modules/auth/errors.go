package auth

import "errors"

// ErrInvalidCredentials covers unknown email, wrong password, and
// deactivated accounts alike, so login failures do not reveal which it was.
var ErrInvalidCredentials = errors.New("incorrect email or password")
