// Package repository implements row-level persistence for the
// application over database/sql.  Sentinel errors declared here let
// handlers distinguish failure scenarios without string matching:
// a not-found lookup maps to HTTP 404, a duplicate email to 409.
package repository

import "errors"

// ErrNotFound is returned when a lookup by id matches no row.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when inserting a user whose email is
// already taken.  Handlers should translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")
