package domain

import "errors"

var (
	// ErrListingNotFound is returned when no listing carries the requested name
	ErrListingNotFound = errors.New("listing not found in catalogue")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogueUnavailable is returned when the catalogue source cannot be read
	ErrCatalogueUnavailable = errors.New("catalogue source unavailable")

	// ErrUnsupportedSource is returned for an unknown catalogue source type
	ErrUnsupportedSource = errors.New("unsupported catalogue source")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
