package storage

import "errors"

var (
	// ErrNotFound is returned for lookups of unknown products, carts,
	// users, or line-item indexes. Callers surface it instead of
	// silently ignoring the operation.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when registering an email that already
	// has a user record.
	ErrEmailTaken = errors.New("email already registered")
)
