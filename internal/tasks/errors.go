package tasks

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/task-manager/pkg/decode"
)

// Domain errors for task operations.
var (
	ErrNotFound      = errors.New("Task not found")
	ErrInvalidID     = errors.New("Invalid task ID")
	ErrInvalidStatus = errors.New("status is required and must be a string")
	ErrInvalidBody   = errors.New("request body must be a non-empty JSON object")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidBody) ||
		errors.Is(err, decode.ErrNotObject) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
