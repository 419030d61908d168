// internal/services/errors.go
package services

import "errors"

// Sentinel errors surfaced to the view layer. Store read failures are not
// part of this set: malformed persisted content is recovered at the store
// boundary by substituting an empty collection.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicateID  = errors.New("duplicate product id")
)
