package errors

import "fmt"

// Error codes
const (
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeGeneration = "GENERATION_FAILED"
	ErrCodeAudioIO    = "AUDIO_IO_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR with a message
// specific to the violated rule.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Status:  400,
	}
}

// NewGenerationError creates a new GENERATION_FAILED error. The underlying
// provider error is kept for server-side logging but the message carries no
// internal detail.
func NewGenerationError(what string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeGeneration,
		Message: fmt.Sprintf("%s could not be generated", what),
		Status:  500,
		Err:     err,
	}
}

// NewAudioIOError creates a new AUDIO_IO_ERROR. Temp-file failures are
// surfaced as a generic caller-facing message; retrying with another file
// usually resolves them, so the status is 400 rather than 500.
func NewAudioIOError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeAudioIO,
		Message: "error saving audio file",
		Status:  400,
		Err:     err,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}
