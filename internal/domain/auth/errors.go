package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPin         = errors.New("invalid PIN")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
