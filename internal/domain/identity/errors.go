package identity

import "errors"

// Sentinel errors for the identity context; the HTTP boundary maps them to
// status codes.
var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmptyPasswordHash  = errors.New("password hash cannot be empty")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
