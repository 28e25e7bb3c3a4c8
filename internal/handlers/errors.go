package handlers

import (
	"errors"
	"net/http"

	"shop-catalog-api/internal/repositories"
	"shop-catalog-api/internal/services"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusForError maps the service/repository error taxonomy to an HTTP
// status: malformed input is 400, lookup misses are 404, everything else
// surfaces as 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrBadRequest), errors.Is(err, repositories.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorLabel gives the response's short error tag for a status code
func errorLabel(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BadRequest"
	case http.StatusNotFound:
		return "NotFound"
	default:
		return "InternalError"
	}
}

// newErrorResponse builds the response body for a failed request
func newErrorResponse(err error) (int, ErrorResponse) {
	status := statusForError(err)
	body := ErrorResponse{
		Error:   errorLabel(status),
		Message: err.Error(),
	}
	if status == http.StatusInternalServerError {
		// Internal detail stays in the logs, not the response
		body.Message = "An internal error occurred"
	}
	return status, body
}
