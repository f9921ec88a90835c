// Package repository defines error types that are reused across the SQL
// and in-memory stores.  These sentinel values allow higher layers such as
// the booking service and the handlers to distinguish between failure
// scenarios with errors.Is.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when the requested row does not exist.  Handlers
// translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrReferenceExists is returned when a booking is inserted with a
// reference that is already taken.  Callers regenerate the reference and
// try again.
var ErrReferenceExists = errors.New("booking reference already exists")

// ErrUsernameExists is returned when a seeded user collides with an
// existing username.
var ErrUsernameExists = errors.New("username already exists")

// ErrInvalidTransition is returned when a status change is requested on a
// booking that is no longer pending.  Handlers translate it into an HTTP
// 409 response.
var ErrInvalidTransition = errors.New("invalid status transition")

// isDuplicate reports whether err is a unique constraint violation from
// MySQL (error 1062) or SQLite.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "1062") || strings.Contains(msg, "unique constraint failed")
}
