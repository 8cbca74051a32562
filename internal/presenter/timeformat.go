// Package presenter formats check records for terminal output
package presenter

import (
	"fmt"
	"time"
)

// FormatTimeSince formats the time between t and now as a human-readable "X ago" string.
// Returns formats like "just now", "5 minutes ago", "2.5 hours ago", or "3 days ago".
func FormatTimeSince(t, now time.Time) string {
	duration := now.Sub(t)

	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		return fmt.Sprintf("%.0f minutes ago", duration.Minutes())
	case duration < 24*time.Hour:
		return fmt.Sprintf("%.1f hours ago", duration.Hours())
	default:
		return fmt.Sprintf("%.0f days ago", duration.Hours()/24)
	}
}

// FormatTimeSinceCompact is FormatTimeSince for table cells: "now", "5m ago", "2.5h ago", "3d ago".
func FormatTimeSinceCompact(t, now time.Time) string {
	duration := now.Sub(t)

	switch {
	case duration < time.Minute:
		return "now"
	case duration < time.Hour:
		return fmt.Sprintf("%.0fm ago", duration.Minutes())
	case duration < 24*time.Hour:
		return fmt.Sprintf("%.1fh ago", duration.Hours())
	default:
		return fmt.Sprintf("%.0fd ago", duration.Hours()/24)
	}
}

// Truncate shortens s to maxLen bytes, ending with an ellipsis when cut
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
