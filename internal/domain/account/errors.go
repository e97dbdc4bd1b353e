package account

import "errors"

var (
	ErrNotFound           = errors.New("account not found")
	ErrAccountExists      = errors.New("account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidName        = errors.New("name is required")
	ErrInvalidPassword    = errors.New("password must be at least 6 characters")
)
