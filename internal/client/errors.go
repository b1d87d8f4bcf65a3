package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure categories. Use errors.Is against an error returned by Client.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrServer       = errors.New("server error")
)

// APIError is a non-2xx reply from the blog API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("blog api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("blog api: %d %s", e.StatusCode, e.Message)
}

// Is maps the status code onto a failure category.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.StatusCode == http.StatusBadRequest ||
			e.StatusCode == http.StatusRequestEntityTooLarge ||
			e.StatusCode == http.StatusUnprocessableEntity
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrServer:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// UserMessage returns one human-readable message per failure category.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr) && errors.Is(err, ErrValidation) && apiErr.Message != "":
		return apiErr.Message
	case errors.Is(err, ErrValidation):
		return "The request was rejected. Please check the form and try again."
	case errors.Is(err, ErrNotFound):
		return "Post not found or failed to load."
	case errors.Is(err, ErrUnauthorized):
		return "Please log in as admin and try again."
	case errors.Is(err, ErrRateLimited):
		return "Too many requests, please try again later."
	case errors.Is(err, ErrServer):
		return "Something went wrong on the server. Please try again later."
	case errors.As(err, &apiErr):
		return "Unexpected response from the blog API."
	default:
		return "Unable to reach the blog API. Please check your connection."
	}
}
