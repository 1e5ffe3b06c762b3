// Package structure checks planning documents for the second-level sections
// a schema requires, and optionally flags required sections that still hold
// only template filler.
package structure

import "errors"

// Sentinel errors for the structure package.
var (
	// ErrSchemaNotFound indicates the schema file does not exist. Callers
	// treat this as a reason to skip the check, not as a failure.
	ErrSchemaNotFound = errors.New("structure: schema not found")

	// ErrInvalidSchema indicates the schema exists but is not an object of
	// filename to list of heading strings.
	ErrInvalidSchema = errors.New("structure: invalid schema")

	// ErrSchemaUnreadable indicates the schema path exists but could not be
	// read, for example because of permissions or because it is a directory.
	ErrSchemaUnreadable = errors.New("structure: schema unreadable")
)
