// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationFields wraps multiple field errors.
type ValidationFields struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationFields {
	return &ValidationFields{Detail: "Validation error", Fields: fields}
}

// Error is a domain error carrying the HTTP status it maps to. Services
// return these so handlers can convert them without inspecting messages.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(msg string) *Error   { return &Error{Code: http.StatusBadRequest, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Code: http.StatusUnauthorized, Message: msg} }
func Forbidden(msg string) *Error    { return &Error{Code: http.StatusForbidden, Message: msg} }
func NotFound(msg string) *Error     { return &Error{Code: http.StatusNotFound, Message: msg} }
func Conflict(msg string) *Error     { return &Error{Code: http.StatusConflict, Message: msg} }
func Storage(msg string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: msg}
}

// Respond writes the JSON error envelope for err. Untyped errors are
// reported as a generic 500 so internals never reach the client.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Code, New(apiErr.Message))
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, New("Internal server error"))
}
