// Package utils provides utility functions for the application.
package utils

// ToPtr returns a pointer to a copy of v
func ToPtr[T any](v T) *T {
	return &v
}

// IsTrue reports whether b is set and true
func IsTrue(b *bool) bool {
	return b != nil && *b
}
