package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrSignatureMismatch  = errors.New("invalid payment signature")
	ErrOrderDelivered     = errors.New("cannot cancel delivered order")
)
