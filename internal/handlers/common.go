package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"vidloop-backend/internal/repository"
	"vidloop-backend/internal/services"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// serviceErrorStatus maps known service errors to HTTP status codes.
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrVideoNotFound),
		errors.Is(err, services.ErrCommentNotFound),
		errors.Is(err, services.ErrChatNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, services.ErrEmptyComment),
		errors.Is(err, services.ErrEmptyMessage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
