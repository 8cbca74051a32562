// Package palindrome reports whether text reads the same forward and backward,
// ignoring case and any character at or below the space character.
package palindrome

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned in strict mode for text with nothing to compare
var ErrInvalidInput = errors.New("input has no comparable characters")

// Options controls a check
type Options struct {
	// Fold selects the case normalization rule
	Fold Fold

	// Strict rejects empty and all-whitespace input with ErrInvalidInput
	// instead of treating it as a palindrome
	Strict bool
}

// Skippable reports whether c is excluded from comparison.
// Spaces and control characters (code 32 and below) are skipped.
func Skippable(c byte) bool {
	return c <= ' '
}

// IsPalindrome checks text with the default options.
// Empty and all-whitespace text is vacuously a palindrome.
func IsPalindrome(text string) bool {
	ok, _ := Check(text, Options{})
	return ok
}

// Check reports whether text is a palindrome under opts
func Check(text string, opts Options) (bool, error) {
	ok, err := scan(text, opts)
	if err != nil {
		return false, fmt.Errorf("check %q: %w", text, err)
	}
	return ok, nil
}

// CheckBytes is Check for a byte slice. The slice is only read.
func CheckBytes(text []byte, opts Options) (bool, error) {
	ok, err := scan(text, opts)
	if err != nil {
		return false, fmt.Errorf("check %q: %w", text, err)
	}
	return ok, nil
}

// scan walks two cursors toward each other, skipping whitespace on both
// sides, until they meet or a folded pair differs.
func scan[T string | []byte](text T, opts Options) (bool, error) {
	if !hasComparable(text) {
		if opts.Strict {
			return false, ErrInvalidInput
		}
		return true, nil
	}

	i, j := 0, len(text)-1
	for {
		for i < j && Skippable(text[i]) {
			i++
		}
		for j > i && Skippable(text[j]) {
			j--
		}
		if i >= j {
			return true, nil
		}
		if opts.Fold.Apply(text[i]) != opts.Fold.Apply(text[j]) {
			return false, nil
		}
		i++
		j--
	}
}

func hasComparable[T string | []byte](text T) bool {
	for k := 0; k < len(text); k++ {
		if !Skippable(text[k]) {
			return true
		}
	}
	return false
}
