package helpers

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// HoursBetween returns the elapsed hours from start to end, rounded to 2
// decimal places. This is the derived total on closed attendance records.
func HoursBetween(start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	if hours < 0 {
		hours = 0
	}
	return math.Round(hours*100) / 100
}

// StartOfDay truncates a time to midnight in its own location. Staff
// attendance is scoped per calendar day, so both the open-record lookup and
// the insert use this as the attendance date.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
