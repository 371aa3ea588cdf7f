package collections

import (
	"errors"
	"net/http"
)

// Domain errors for collection operations.
var (
	ErrNotFound   = errors.New("collection not found")
	ErrValidation = errors.New("validation failed")
)

// MapHTTPStatus maps collection domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
