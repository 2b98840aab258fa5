package users

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/task-manager/pkg/decode"
)

// Domain errors for user operations.
var (
	ErrNotFound  = errors.New("User not found")
	ErrDuplicate = errors.New("User already exists")
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
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, decode.ErrNotObject) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
