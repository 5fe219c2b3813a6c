package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown connector type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNoContent indicates the upstream answered but nothing usable came back,
	// e.g. an extract below the length floor or an empty result list.
	ErrNoContent = errors.New("no content")

	// ErrCorpusFrozen indicates an append after the corpus was frozen.
	ErrCorpusFrozen = errors.New("corpus is frozen")
)

// FetchError records a failed request key for a source.
type FetchError struct {
	Source SourceLabel
	Key    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: fetch %q: %v", e.Source, e.Key, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}
