package services

import (
	"fmt"
	"net/http"
)

type ServiceError struct {
	Status  int
	Message string
}

func (e ServiceError) Error() string {
	return e.Message
}

var (
	ErrDuplicateEmail     = ServiceError{Status: http.StatusConflict, Message: "Email is already registered"}
	ErrWeakCredential     = ServiceError{Status: http.StatusBadRequest, Message: "Password should be at least 6 characters"}
	ErrInvalidCredential  = ServiceError{Status: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrSessionExpired     = ServiceError{Status: http.StatusUnauthorized, Message: "Authentication failed"}
	ErrBackendUnavailable = ServiceError{Status: http.StatusServiceUnavailable, Message: "Service temporarily unavailable"}
	ErrRateLimited        = ServiceError{Status: http.StatusTooManyRequests, Message: "Too many messages, please try again later"}
)

func ErrNotFound(msg string) error {
	return ServiceError{Status: http.StatusNotFound, Message: msg}
}

func ErrBadRequest(msg string) error {
	return ServiceError{Status: http.StatusBadRequest, Message: msg}
}

func ErrForbidden(msg string) error {
	return ServiceError{Status: http.StatusForbidden, Message: msg}
}

func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
