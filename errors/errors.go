package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the custom error type for the application. Handlers map
// it onto the HTTP response via HTTPCode and Message.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  []string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail appends a field-level message to the error
func (e AppError) WithDetail(detail string) AppError {
	e.Details = append(e.Details, detail)
	return e
}

// As extracts an AppError from err, if any
func As(err error) (AppError, bool) {
	var appErr AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// ErrInternal wraps an unexpected failure
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal Server Error",
	}
}

// ErrValidation reports malformed input
func ErrValidation(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION,
		Message:  message,
	}
}

// ErrNotFound reports a missing resource. The message never reveals
// whether the resource exists under another owner.
func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// ErrUnauthenticated reports a missing credential
func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_UNAUTHENTICATED,
		Message:  "Authentication required",
	}
}

// ErrInvalidToken reports an invalid or expired credential
func ErrInvalidToken() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_UNAUTHENTICATED,
		Message:  "Invalid token",
	}
}

// ErrSummaryFailed wraps a summarizer failure
func ErrSummaryFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_SUMMARY_FAILED,
		Message:  "Failed to generate summary",
	}
}
