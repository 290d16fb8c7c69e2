package domain

import "errors"

var (
	// ErrInvalidInput is returned when a request is missing a required field or carries a value of the wrong shape
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNotFound is returned when a lookup inside the category tree or map misses
	ErrNotFound = errors.New("not found")

	// ErrMalformedPath is returned when a selection path cannot be encoded or decoded
	ErrMalformedPath = errors.New("malformed selection path")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
