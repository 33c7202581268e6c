// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/amirphl/cvm-forms/app/dto"
	"github.com/amirphl/cvm-forms/utils"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
)

const (
	defaultRequestTimeout = 30 * time.Second
	exportRequestTimeout  = 2 * time.Minute
)

var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// ErrorResponse writes the uniform failure envelope
func ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

// SuccessResponse writes the uniform success envelope
func SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// newValidator returns a validator reporting JSON field names and carrying the form rules
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Text fields are stored trimmed, so whitespace alone is not a value
	v.RegisterValidation("notblank", validators.NotBlank)

	// Indian mobile numbers: ten digits starting with 6-9
	v.RegisterValidation("mobile_format", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	v.RegisterValidation("past_date", func(fl validator.FieldLevel) bool {
		t, err := utils.ParseDate(strings.TrimSpace(fl.Field().String()))
		if err != nil {
			return false
		}
		return t.Before(time.Now())
	})

	v.RegisterValidation("not_future_year", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(time.Now().Year())
	})

	return v
}

// validationErrors flattens validator output into one message per failing field
func validationErrors(err error) []string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, getValidationErrorMessage(fe))
	}
	return out
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "notblank":
		return err.Field() + " cannot be blank"
	case "email":
		return "Please provide a valid email"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	case "mobile_format":
		return "Please provide a valid 10-digit mobile number"
	case "past_date":
		return err.Field() + " must be a valid date in the past"
	case "not_future_year":
		return err.Field() + " cannot be in the future"
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", err.Field(), err.Param())
	default:
		return err.Field() + " is invalid"
	}
}

// createRequestContext bounds downstream store calls for one request
func createRequestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func requestID(c fiber.Ctx) string {
	if rid := requestid.FromContext(c); rid != "" {
		return rid
	}
	return c.Get(fiber.HeaderXRequestID)
}
