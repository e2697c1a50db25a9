package service

import "errors"

var (
	ErrValidation         = errors.New("all fields are required")
	ErrDuplicate          = errors.New("duplicate record")
	ErrNotFound           = errors.New("record not found")
	ErrHasNotes           = errors.New("user has assigned notes")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
