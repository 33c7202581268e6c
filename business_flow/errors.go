// Package businessflow contains the core business logic and use cases for form registration
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Submission errors
	ErrDuplicateSubmission = errors.New("form already submitted with this email or mobile number")
	ErrSubmissionNotFound  = errors.New("form not found")
	ErrPersistenceFailed   = errors.New("failed to persist form submission")

	// Sequence allocation errors
	ErrSequenceAllocationFailed = errors.New("failed to allocate sequence value")
	ErrInvalidSequenceName      = errors.New("sequence name must not be empty")

	// Admin authentication errors
	ErrAdminNotFound       = errors.New("admin not found")
	ErrAdminInactive       = errors.New("admin account is inactive")
	ErrAdminAlreadyExists  = errors.New("admin with this username already exists")
	ErrIncorrectPassword   = errors.New("incorrect password")
	ErrInvalidCaptcha      = errors.New("invalid captcha")
	ErrCaptchaNotAvailable = errors.New("captcha not available")
	ErrInvalidCredentials  = errors.New("username or password does not meet requirements")

	// Request errors
	ErrNilRequest        = errors.New("request is nil")
	ErrInvalidSubmission = errors.New("invalid form submission")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

// AllocationError reports a failed sequence allocation; callers must not mint an identifier after it
type AllocationError struct {
	Sequence string
	Err      error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocate %q: %v", e.Sequence, e.Err)
}

func (e *AllocationError) Unwrap() []error {
	return []error{ErrSequenceAllocationFailed, e.Err}
}

func IsDuplicateSubmission(err error) bool {
	return errors.Is(err, ErrDuplicateSubmission)
}

func IsSubmissionNotFound(err error) bool {
	return errors.Is(err, ErrSubmissionNotFound)
}

func IsSequenceAllocationFailed(err error) bool {
	return errors.Is(err, ErrSequenceAllocationFailed)
}

func IsPersistenceFailed(err error) bool {
	return errors.Is(err, ErrPersistenceFailed)
}

func IsInvalidSubmission(err error) bool {
	return errors.Is(err, ErrInvalidSubmission) || errors.Is(err, ErrNilRequest)
}

func IsInvalidCaptcha(err error) bool {
	return errors.Is(err, ErrInvalidCaptcha)
}

// IsBadCredentials reports a failed login that must not reveal which part was wrong
func IsBadCredentials(err error) bool {
	return errors.Is(err, ErrAdminNotFound) || errors.Is(err, ErrIncorrectPassword)
}

func IsAdminInactive(err error) bool {
	return errors.Is(err, ErrAdminInactive)
}

func IsAdminAlreadyExists(err error) bool {
	return errors.Is(err, ErrAdminAlreadyExists)
}

func IsCaptchaNotAvailable(err error) bool {
	return errors.Is(err, ErrCaptchaNotAvailable)
}
