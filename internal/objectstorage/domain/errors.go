package domain

import (
	"github.com/allisson/oscli/internal/errors"
)

// Object storage domain errors.
var (
	// ErrChecksumMismatch indicates the MD5 reported by the service differs from the local one.
	ErrChecksumMismatch = errors.Wrap(errors.ErrConflict, "checksum mismatch")

	// ErrMissingTimeUnit indicates a retention time amount was given without its unit.
	ErrMissingTimeUnit = errors.Wrap(errors.ErrUsage, "Parameter --time-unit is required")

	// ErrInvalidDatetime indicates a datetime option could not be parsed.
	ErrInvalidDatetime = errors.Wrap(errors.ErrUsage, "is not in a supported datetime format")

	// ErrBulkFailures indicates at least one item of a bulk operation failed.
	ErrBulkFailures = errors.New("one or more items failed")
)
