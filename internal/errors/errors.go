package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	// Authentication errors
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"

	// Authorization errors
	ErrCodeForbidden = "FORBIDDEN"

	// Validation errors
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeWeakPassword = "WEAK_PASSWORD"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"
	ErrCodeConflict = "CONFLICT"

	// Deletion errors
	ErrCodeOperationFailed = "OPERATION_FAILED"

	// Service errors
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// NewAPIErrorWithDetails creates a new APIError with details
func NewAPIErrorWithDetails(code, message string, details any) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeUnauthorized, message))
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	RespondWithError(c, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, message))
}

// BadRequestWithDetails sends a 400 response with details
func BadRequestWithDetails(c *gin.Context, message string, details any) {
	RespondWithError(c, http.StatusBadRequest, NewAPIErrorWithDetails(ErrCodeInvalidInput, message, details))
}

// WeakPassword sends a 400 response listing the unmet password rules
func WeakPassword(c *gin.Context, rules []string) {
	RespondWithError(c, http.StatusBadRequest, NewAPIErrorWithDetails(ErrCodeWeakPassword, "Password does not meet the requirements", gin.H{
		"rules": rules,
	}))
}

// InvalidCredentials sends a 401 response for a failed login
func InvalidCredentials(c *gin.Context) {
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeInvalidCredentials, "Invalid email or password"))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, http.StatusConflict, NewAPIError(ErrCodeConflict, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}

// OperationFailed sends a 500 response for a write that was rolled back.
// Clients may repeat the request when retryable is set.
func OperationFailed(c *gin.Context, message string, retryable bool) {
	if message == "" {
		message = "Operation failed, no changes were made"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIErrorWithDetails(ErrCodeOperationFailed, message, gin.H{
		"retryable": retryable,
	}))
}

// ServiceUnavailable sends a 503 response
func ServiceUnavailable(c *gin.Context, message string) {
	if message == "" {
		message = "Service temporarily unavailable"
	}
	RespondWithError(c, http.StatusServiceUnavailable, NewAPIError(ErrCodeServiceUnavailable, message))
}
