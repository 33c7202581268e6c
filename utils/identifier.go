package utils

import (
	"fmt"
	"regexp"
)

var userIDPattern = regexp.MustCompile(`^[A-Z]+\d{2}\d{4,}$`)

// FormatUserID builds <prefix><2-digit-year><zero-padded-sequence>.
// Sequences above 9999 widen the numeric tail instead of being truncated.
func FormatUserID(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s%02d%0*d", prefix, year%100, UserIDSequenceWidth, seq)
}

// IsValidUserID reports whether id has the shape produced by FormatUserID
func IsValidUserID(id string) bool {
	return userIDPattern.MatchString(id)
}
