package domain

import "errors"

var (
	// ErrEntryNotFound indicates a list operation named an ID the list does
	// not contain.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrLastEntry indicates a removal was refused because every list keeps
	// at least one entry.
	ErrLastEntry = errors.New("cannot remove the last entry")

	// ErrUnknownField indicates a field, list or column name that the
	// proposal does not have.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownAxis indicates a strategic axis label outside the configured set.
	ErrUnknownAxis = errors.New("unknown strategic axis")
)
