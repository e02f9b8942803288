// Package timefmt renders segment offsets as clock-style timestamps.
package timefmt

import (
	"fmt"
	"math"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute

	relativeEpsilon = 1e-14
)

// Format converts seconds into MM:SS.mmm, or HH:MM:SS.mmm once the hour field is non-zero.
// Fractional milliseconds are truncated so the seconds field never reads 60;
// only float error from the seconds-to-milliseconds conversion is absorbed.
// Negative and NaN input is treated as zero.
func Format(seconds float64) string {
	total := toMillis(seconds)
	hours := total / msPerHour
	minutes := (total % msPerHour) / msPerMinute
	secs := (total % msPerMinute) / msPerSecond
	millis := total % msPerSecond
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
	}
	return fmt.Sprintf("%02d:%02d.%03d", minutes, secs, millis)
}

// Range renders a start–end pair separated by an en dash.
func Range(start, end float64) string {
	return Format(start) + "–" + Format(end)
}

func toMillis(seconds float64) int64 {
	if math.IsNaN(seconds) || seconds <= 0 {
		return 0
	}
	if math.IsInf(seconds, 1) || seconds > math.MaxInt64/msPerSecond {
		return math.MaxInt64 / msPerSecond * msPerSecond
	}
	// The relative epsilon only covers the product's rounding error (65.123*1000
	// lands a few ulps under 65123); anything larger would round up values like
	// 59.9999999999 instead of truncating them.
	ms := seconds * msPerSecond
	return int64(math.Floor(ms + ms*relativeEpsilon))
}
