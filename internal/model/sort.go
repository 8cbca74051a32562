package model

import "sort"

// SortBy specifies the field and order for sorting check records
type SortBy string

const (
	SortByText    SortBy = "text"
	SortByTime    SortBy = "time"
	SortByResult  SortBy = "result"
	SortByDefault SortBy = "" // Default sort: fold, then text
)

// SortRecords sorts a slice of check records in place based on the specified field.
// The sortBy parameter should be one of: "text", "time", "result".
// If sortBy is empty or unrecognized, records are sorted by fold, then by text.
func SortRecords(records []*CheckRecord, sortBy string) {
	switch SortBy(sortBy) {
	case SortByText:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Text < records[j].Text
		})
	case SortByTime:
		// Most recent first
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CheckTime.After(records[j].CheckTime)
		})
	case SortByResult:
		// Palindromes first, then by text
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].IsPalindrome != records[j].IsPalindrome {
				return records[i].IsPalindrome
			}
			return records[i].Text < records[j].Text
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].Fold != records[j].Fold {
				return records[i].Fold < records[j].Fold
			}
			return records[i].Text < records[j].Text
		})
	}
}
