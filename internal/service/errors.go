package service

import "errors"

// Domain error taxonomy. Handlers translate these to transport status codes;
// nothing below the delivery layer knows about HTTP.
var (
	// ErrNotFound signals that a referenced entity id has no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a uniqueness or integrity constraint violation.
	// The transaction is rolled back before this is returned.
	ErrConflict = errors.New("conflict")
	// ErrUpstream signals a failure of an external model or data provider.
	ErrUpstream = errors.New("upstream failure")
)
