package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., mongo) inside this directory.

import "errors"

// Sentinel errors shared by all repositories. Implementations translate
// their driver's errors into these so callers never depend on driver types.
var (
	// ErrNotFound is returned when the referenced document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID is returned when an identifier cannot be converted into
	// the store's native identifier type. This is a caller error, not a
	// store failure.
	ErrInvalidID = errors.New("invalid id")
)

// UpdateResult reports the outcome of a single-document update.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedID    string
	Acknowledged  bool
}

// DeleteResult reports the outcome of a single-document delete.
type DeleteResult struct {
	DeletedCount int64
	Acknowledged bool
}
