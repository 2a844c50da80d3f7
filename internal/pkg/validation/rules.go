package validation

import (
	"regexp"
	"time"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Date-of-birth wire format
	DateOnlyFormat = "2006-01-02"

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// Classroom capacity bounds
	CapacityMin = 1
	CapacityMax = 60
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// ParseDateOfBirth parses a YYYY-MM-DD date-of-birth string. The date must
// parse and must not be in the future relative to now.
func ParseDateOfBirth(value string, now time.Time) (time.Time, bool) {
	dob, err := time.Parse(DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, false
	}
	if dob.After(now) {
		return time.Time{}, false
	}
	return dob, true
}

// ValidEmail reports whether an email address matches the accepted pattern.
func ValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// ValidCapacity reports whether a classroom capacity is within bounds.
func ValidCapacity(capacity int) bool {
	return capacity >= CapacityMin && capacity <= CapacityMax
}
