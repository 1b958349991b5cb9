// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ideas

import "fmt"

// ValidationError is caller input that breaks a contract. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrTextRequired = &ValidationError{Message: "text required"}
	ErrInvalidID    = &ValidationError{Message: "invalid id"}
)

// NotFoundError means no idea has the requested id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("idea %d not found", e.ID)
}

// StorageError wraps a failed or timed out store call. Callers may retry.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
