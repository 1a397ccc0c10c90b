package scenario

import "errors"

var (
	// Loading and validation errors

	ErrUnsupportedFormat = errors.New("unsupported scenario file format")
	ErrMissingName       = errors.New("scenario name is required")
	ErrMissingStepID     = errors.New("step id is required")
	ErrDuplicateStep     = errors.New("duplicate step id")
	ErrUnknownOp         = errors.New("unknown operation")
	ErrInvalidDims       = errors.New("invalid dimensions for operation")
	ErrInvalidPrecision  = errors.New("precision must not be negative")

	// Step errors, reported per result

	ErrZeroVector   = errors.New("zero vector has no direction")
	ErrInvalidLabel = errors.New("invalid component label")
)
