package model

import (
	"fmt"
	"time"
)

// CheckRecord is the stored outcome of one palindrome check.
// Records are keyed by (Fold, Text).
type CheckRecord struct {
	Text         string
	Fold         string
	IsPalindrome bool
	CheckTime    time.Time
	Rev          int64 // Incremented by the repository on every store
}

// Key returns the composite key for the record
func (r *CheckRecord) Key() string {
	return MakeKey(r.Fold, r.Text)
}

// MakeKey builds the composite key used to index records.
// It matches the DynamoDB schema where PK=fold and SK=text.
func MakeKey(fold, text string) string {
	return fold + "#" + text
}

// Validate checks that the record can be stored
func (r *CheckRecord) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}
	if r.Fold == "" {
		return fmt.Errorf("%w: fold is required", ErrInvalidRecord)
	}
	return nil
}
