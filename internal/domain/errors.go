package domain

import (
	"context"
	"errors"
)

// Error categories surfaced by the ledger. Adapters wrap their failures with
// exactly one of these so callers can branch with errors.Is and never look at
// vendor error codes.
var (
	// ErrValidation marks a request that breaks a domain rule before any
	// store access, such as a transfer whose deltas do not sum to zero.
	ErrValidation = errors.New("validation failed")

	// ErrAlreadyExists marks a create-account conflict on an existing id.
	ErrAlreadyExists = errors.New("account already exists")

	// ErrNotFound marks a lookup against an unknown account.
	ErrNotFound = errors.New("account not found")

	// ErrLegFailure marks a transfer leg that referenced a missing account or
	// would have left a balance negative (or out of range). The whole
	// transfer is rolled back.
	ErrLegFailure = errors.New("transfer leg rejected")

	// ErrTransientConflict marks a store-reported serialization conflict.
	// Only the transaction executor handles it.
	ErrTransientConflict = errors.New("serialization conflict")

	// ErrRetryLimit is returned when conflicts exhausted the configured
	// attempt budget.
	ErrRetryLimit = errors.New("conflict retry limit reached")

	// ErrStoreUnavailable marks connection, pool or other store failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Category names the taxonomy bucket an error falls into.
type Category string

const (
	CategoryNone             Category = ""
	CategoryValidation       Category = "VALIDATION"
	CategoryAlreadyExists    Category = "ALREADY_EXISTS"
	CategoryNotFound         Category = "NOT_FOUND"
	CategoryLegFailure       Category = "LEG_FAILURE"
	CategoryConflict         Category = "TRANSIENT_CONFLICT"
	CategoryRetryLimit       Category = "RETRY_LIMIT"
	CategoryStoreUnavailable Category = "STORE_UNAVAILABLE"
	CategoryCanceled         Category = "CANCELED"
)

// CategoryOf returns the category carried by err, or CategoryNone when err is
// nil or carries none. ErrRetryLimit is checked before the conflict sentinel.
func CategoryOf(err error) Category {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, ErrValidation):
		return CategoryValidation
	case errors.Is(err, ErrAlreadyExists):
		return CategoryAlreadyExists
	case errors.Is(err, ErrNotFound):
		return CategoryNotFound
	case errors.Is(err, ErrLegFailure):
		return CategoryLegFailure
	case errors.Is(err, ErrRetryLimit):
		return CategoryRetryLimit
	case errors.Is(err, ErrTransientConflict):
		return CategoryConflict
	case errors.Is(err, ErrStoreUnavailable):
		return CategoryStoreUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CategoryCanceled
	default:
		return CategoryNone
	}
}

// IsConflict reports whether err is a serialization conflict that the
// executor may retry.
func IsConflict(err error) bool {
	return CategoryOf(err) == CategoryConflict
}
