package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes used across every service.
const (
	CodeInvalidInput = "invalid_input"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeInvalidState = "invalid_state"
	CodeInternal     = "internal"
)

// Error is the application error type returned by services. Handlers map its
// code to an HTTP status; anything else becomes a generic 500.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NewInvalidInput(msg string) *Error { return &Error{Code: CodeInvalidInput, Message: msg} }
func NewUnauthorized(msg string) *Error { return &Error{Code: CodeUnauthorized, Message: msg} }
func NewForbidden(msg string) *Error    { return &Error{Code: CodeForbidden, Message: msg} }
func NewNotFound(msg string) *Error     { return &Error{Code: CodeNotFound, Message: msg} }
func NewInvalidState(msg string) *Error { return &Error{Code: CodeInvalidState, Message: msg} }

// NewInternal wraps an underlying failure. The cause is logged server-side
// only; clients see the generic message.
func NewInternal(msg string, err error) *Error {
	return &Error{Code: CodeInternal, Message: msg, Err: err}
}

func statusForCode(code string) int {
	switch code {
	case CodeInvalidInput, CodeInvalidState:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the standard error envelope for a service error.
func RespondError(c *gin.Context, err error) {
	logger := GetLogger()
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Code == CodeInternal {
			logger.Error(appErr.Message, zap.Error(appErr.Err))
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": appErr.Message})
			return
		}
		logger.Warn(appErr.Message, zap.String("code", appErr.Code))
		c.JSON(statusForCode(appErr.Code), gin.H{"status": "error", "message": appErr.Message})
		return
	}
	logger.Error("Unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal Server Error"})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, gin.H{
					"status":  "error",
					"message": "Internal Server Error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
