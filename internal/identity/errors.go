package identity

import "errors"

var (
	// ErrDuplicateEmail indicates the email is already registered. The
	// uniqueness check is enforced by the store, not by a prior lookup.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound indicates no user matches the given email or identifier.
	ErrNotFound = errors.New("user not found")

	// ErrInvalidCredential indicates the password does not match the stored hash.
	ErrInvalidCredential = errors.New("invalid credentials")

	// ErrUnverified indicates the account exists but has not been verified.
	ErrUnverified = errors.New("email not verified")
)
