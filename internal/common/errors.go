package common

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error codes for the pipeline taxonomy. Every failure surfaced to the user
// carries exactly one of these.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeExtraction     = "EXTRACTION_ERROR"
	CodeLLMUnavailable = "LLM_UNAVAILABLE"
	CodeParse          = "PARSE_ERROR"
	CodeConfig         = "CONFIG_ERROR"
	CodeNotFound       = "NOT_FOUND"
)

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewValidationError(message string) *AppError {
	return NewAppError(CodeValidation, message, ErrInvalidInput)
}

func NewExtractionError(message string, cause error) *AppError {
	return NewAppError(CodeExtraction, message, cause)
}

func NewLLMUnavailableError(cause error) *AppError {
	return NewAppError(CodeLLMUnavailable, "all model providers failed", cause)
}

func NewParseError(message string, cause error) *AppError {
	return NewAppError(CodeParse, message, cause)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ErrorCode extracts the AppError code from an error chain, or "" if none.
func ErrorCode(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// HTTPStatus maps a pipeline error to the HTTP status the handlers return.
func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeExtraction, CodeParse:
		return http.StatusUnprocessableEntity
	case CodeLLMUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
