package user

import "errors"

var (
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// that login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
)
