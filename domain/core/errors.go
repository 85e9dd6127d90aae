package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound = errors.New("resource not found")

	// Malformed input signals programmer error in the calling layer;
	// absent upstream data is never an error here.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	ErrInvalidWeights = errors.New("component weights must sum to 1.0")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewSnapshotError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedSnapshot, field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsMalformedSnapshotError(err error) bool {
	return errors.Is(err, ErrMalformedSnapshot)
}
