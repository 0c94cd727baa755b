package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when a unique constraint would be violated.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrForbidden is returned when the ownership predicate denies an operation.
	ErrForbidden = errors.New("access denied")
	// ErrUnauthorized is returned when the caller's token does not resolve to a user.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned on login failure. Unknown email and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
