package services

import "errors"

var (
	// ErrNotFound is returned when an identifier does not match any seeded record
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for requests that fail validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrMediaDisabled is returned when no S3 bucket is configured
	ErrMediaDisabled = errors.New("media uploads are not configured")
)
