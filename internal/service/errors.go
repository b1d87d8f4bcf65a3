package service

import "fmt"

// ValidationError means the request is missing a required field (400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError means the addressed post does not exist (404).
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string { return "Post not found" }

// StoreError wraps a persistence failure (500). The wrapped error is for
// server logs only.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }
