package utils

import (
	"time"
)

// Form submission defaults
const (
	// DefaultUserIDPrefix is prepended to every generated submission identifier
	DefaultUserIDPrefix = "CVM"

	// DefaultSequenceName is the counter row backing submission identifiers
	DefaultSequenceName = "formUserId"

	// UserIDSequenceWidth is the minimum zero-padded width of the numeric tail
	UserIDSequenceWidth = 4

	// TopDistrictsLimit caps the district breakdown in the statistics summary
	TopDistrictsLimit = 10
)

// Rate limiting defaults for the public submission endpoint
const (
	FormRateLimitMax    = 5
	FormRateLimitWindow = 15 * time.Minute
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// DateLayout is the calendar date format accepted for date of birth
const DateLayout = "2006-01-02"
