package palindrome

import (
	"fmt"
	"strings"
)

// Fold selects how characters are normalized before comparison
type Fold int

const (
	// FoldOffset adds 32 to every code below 97. Uppercase letters land on
	// their lowercase forms, but digits and punctuation move too ('8' becomes 'X').
	FoldOffset Fold = iota

	// FoldASCII lowercases 'A' through 'Z' and leaves everything else alone
	FoldASCII
)

// foldNames maps fold names to their values
var foldNames = map[string]Fold{
	"offset": FoldOffset,
	"ascii":  FoldASCII,
}

// String returns the name accepted by ParseFold
func (f Fold) String() string {
	switch f {
	case FoldOffset:
		return "offset"
	case FoldASCII:
		return "ascii"
	default:
		return fmt.Sprintf("Fold(%d)", int(f))
	}
}

// ParseFold converts a fold name to a Fold.
// An empty name selects FoldOffset.
func ParseFold(name string) (Fold, error) {
	if name == "" {
		return FoldOffset, nil
	}
	f, ok := foldNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown fold %q: valid folds are offset, ascii", name)
	}
	return f, nil
}

// Apply returns the normalized form of c
func (f Fold) Apply(c byte) byte {
	switch f {
	case FoldASCII:
		if 'A' <= c && c <= 'Z' {
			return c + ('a' - 'A')
		}
		return c
	default:
		if c < 97 {
			return c + 32
		}
		return c
	}
}
