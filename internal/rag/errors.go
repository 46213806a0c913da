package rag

import "errors"

// Errors raised by the services themselves, before or instead of a provider
// call. Provider errors pass through unmodified.
var (
	// ErrAmbiguousFileName indicates more than one attached file carries
	// the requested filename.
	ErrAmbiguousFileName = errors.New("multiple files match name")

	// ErrDuplicateFileName indicates the filename is already attached to
	// the store.
	ErrDuplicateFileName = errors.New("file name already exists in store")

	// ErrNotConfirmed indicates the provider accepted a mutation but did
	// not confirm its effect.
	ErrNotConfirmed = errors.New("operation not confirmed by provider")
)
