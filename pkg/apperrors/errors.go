package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the application error type carried from repositories and
// controllers up to the response layer, which maps Status onto the reply.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// As unwraps err into an *AppError if it is one.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func NotFound(entity string, id uint) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: fmt.Sprintf("%s %d not found", entity, id), Status: http.StatusNotFound}
}

func PermissionDenied(msg string) *AppError {
	if msg == "" {
		msg = "you do not have permission to perform this action"
	}
	return &AppError{Code: "PERMISSION_DENIED", Message: msg, Status: http.StatusForbidden}
}

func InvalidInput(msg string) *AppError {
	return &AppError{Code: "INVALID_INPUT", Message: msg, Status: http.StatusBadRequest}
}

func Unauthorized(msg string) *AppError {
	if msg == "" {
		msg = "authentication required"
	}
	return &AppError{Code: "UNAUTHORIZED", Message: msg, Status: http.StatusUnauthorized}
}

func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, Status: http.StatusConflict}
}

func Internal(msg string, cause error) *AppError {
	return &AppError{Code: "INTERNAL_ERROR", Message: msg, Status: http.StatusInternalServerError, Cause: cause}
}
