package services

import "errors"

// Sentinel errors surfaced to handlers. Store failures that don't fit one of
// these are passed through wrapped.
var (
	// ErrUserExists means the username or email is already taken.
	ErrUserExists = errors.New("username or email already taken")
	// ErrInvalidCredentials is returned for any local login failure. It
	// deliberately does not reveal whether the user or the password was wrong.
	ErrInvalidCredentials = errors.New("either the username or the password is incorrect")
	// ErrInvalidID means the supplied identifier is not a well-formed UUID.
	// It is raised before any store access.
	ErrInvalidID = errors.New("invalid identifier")
)
