package services

import (
	"errors"
	"fmt"
)

// Business-rule failures. Terminal; surfaced to the caller unchanged.
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchAlreadyExists = errors.New("match already exists")
	ErrInvalidPageRequest = errors.New("page and size must be positive")
)

// CacheOperationError wraps serialization and store failures on cache reads
// and explicit deletes, where the caller has no fallback data to serve.
// Best-effort cache writes never raise it; they are logged and swallowed.
type CacheOperationError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheOperationError) Error() string {
	return fmt.Sprintf("cache %s failed for key '%s': %v", e.Op, e.Key, e.Err)
}

func (e *CacheOperationError) Unwrap() error { return e.Err }
