// Package selftest checks a palindrome predicate against fixed known literals
package selftest

import "fmt"

var (
	// Palindromes must all be reported as palindromes
	Palindromes = []string{"level", "8448", "KayAk", "step on no pets", "Never odd or even"}

	// NotPalindromes must all be reported as not palindromes
	NotPalindromes = []string{"ad8dF90", "e082 2F01"}
)

// AssertionError reports a literal for which the predicate gave the wrong answer
type AssertionError struct {
	Text     string
	Expected bool
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("wrong output for %q: expected %t", e.Text, e.Expected)
}

// Result is the outcome for a single literal
type Result struct {
	Text     string `json:"text"`
	Expected bool   `json:"expected"`
	Got      bool   `json:"got"`
}

// Passed reports whether the predicate matched the expectation
func (r Result) Passed() bool {
	return r.Got == r.Expected
}

// Results runs check over every literal, positives first
func Results(check func(string) bool) []Result {
	results := make([]Result, 0, len(Palindromes)+len(NotPalindromes))
	for _, text := range Palindromes {
		results = append(results, Result{Text: text, Expected: true, Got: check(text)})
	}
	for _, text := range NotPalindromes {
		results = append(results, Result{Text: text, Expected: false, Got: check(text)})
	}
	return results
}

// Run returns an *AssertionError for the first literal check gets wrong
func Run(check func(string) bool) error {
	for _, r := range Results(check) {
		if !r.Passed() {
			return &AssertionError{Text: r.Text, Expected: r.Expected}
		}
	}
	return nil
}
