package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors or degrade.
//
// - ErrNotFound: row does not exist in store
// - ErrUnavailable: backing store temporarily unavailable
// - ErrCacheMiss: key absent from the option cache
//
// For validation errors use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrCacheMiss   = errors.New("cache miss")
)
