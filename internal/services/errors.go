package services

import "errors"

var (
	// ErrValidation marks malformed client input: a bad header, a
	// non-numeric business id, or an unparseable filter value.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when query filters match no rows. An empty
	// match is a not-found response, not an empty collection.
	ErrNotFound = errors.New("not found")

	// ErrImport marks a storage-side failure committing an import batch.
	// The batch is rolled back in full.
	ErrImport = errors.New("import failed")
)
