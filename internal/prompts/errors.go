package prompts

import (
	"errors"
	"net/http"
)

// Domain errors for prompt operations.
var (
	ErrNotFound           = errors.New("prompt not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrValidation         = errors.New("validation failed")
)

// MapHTTPStatus maps prompt domain errors to HTTP status codes. An
// unresolved collection reference is a client input error rather than a
// missing target, so it maps to 400 instead of 404.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrCollectionNotFound) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
