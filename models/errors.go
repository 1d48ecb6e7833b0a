package models

import "errors"

// Failure classes shared by the repository and service layers. Controllers
// translate them to HTTP statuses; everything else becomes a 500.
var (
	ErrInvalid      = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
