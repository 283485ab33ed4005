package util

import (
	"fmt"
	"time"
)

// FormatPercent formats a 0.0-1.0 ratio as a percentage with two decimals.
// Examples: 0.73 -> "73.00%", 1 -> "100.00%"
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// FormatMetric formats a fairness metric value with four decimals, the same
// precision the backend uses in its own reports.
func FormatMetric(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// FormatBytes formats a byte count with a human-readable unit.
// Examples: 512 -> "512 B", 5242880 -> "5.0 MB"
func FormatBytes(n int64) string {
	switch {
	case n < 1<<10:
		return fmt.Sprintf("%d B", n)
	case n < 1<<20:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	case n < 1<<30:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	default:
		return fmt.Sprintf("%.1f GB", float64(n)/(1<<30))
	}
}

// FormatDateTime formats a time in local "2006-01-02 15:04" form.
func FormatDateTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
