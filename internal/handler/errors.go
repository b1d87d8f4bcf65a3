package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"blogapi/internal/service"
)

const (
	msgInternal       = "Internal server error"
	msgRouteNotFound  = "Route not found"
	msgPostNotFound   = "Post not found"
	msgInvalidBody    = "Invalid request body"
	msgBodyTooLarge   = "Request body too large"
	msgPostDeleted    = "Post deleted successfully"
	msgMediaDeleted   = "Media deleted successfully"
	msgLoginRequired  = "Username and password are required"
	msgBadCredentials = "Invalid username or password"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError sends {"error": message} with the given status.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, ErrorResponse{Error: message}, statusCode)
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeServiceError maps the service error taxonomy onto status codes.
// Store failures are logged and answered with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		WriteError(w, validationErr.Message, http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		WriteError(w, msgPostNotFound, http.StatusNotFound)
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		WriteError(w, msgInternal, http.StatusInternalServerError)
	}
}

// writeDecodeError answers a body that could not be decoded.
func writeDecodeError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		WriteError(w, msgBodyTooLarge, http.StatusRequestEntityTooLarge)
		return
	}
	WriteError(w, msgInvalidBody, http.StatusBadRequest)
}

// NotFound answers unmatched routes and methods.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, msgRouteNotFound, http.StatusNotFound)
}
