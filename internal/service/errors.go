package service

import "errors"

// Sentinel domain errors. Handlers match these with errors.Is and map them
// to status codes; everything else is treated as an internal failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("invalid email or password")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrValidation   = errors.New("validation")
)
