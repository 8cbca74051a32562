package model

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("check record not found")
	ErrInvalidRecord = errors.New("invalid check record")
)

// CheckRepository defines the interface for storing and retrieving check records
type CheckRepository interface {
	// Store saves a record, replacing any record with the same key.
	// The stored Rev is one more than the replaced record's Rev.
	Store(ctx context.Context, record *CheckRecord) error

	// Get retrieves a record by fold and text (the composite key)
	Get(ctx context.Context, fold, text string) (*CheckRecord, error)

	// List retrieves all records
	List(ctx context.Context) ([]*CheckRecord, error)

	// Delete removes a record by fold and text (the composite key)
	Delete(ctx context.Context, fold, text string) error
}
