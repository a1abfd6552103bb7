package repositories

import "errors"

// ErrNotFound is returned when a query or update matched no record.
// Implementations wrap it so callers can branch with errors.Is.
var ErrNotFound = errors.New("record not found")
