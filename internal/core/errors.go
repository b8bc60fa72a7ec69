package core

import "errors"

var (
	// ErrLoadFailed is returned when an input file cannot be parsed as a table
	ErrLoadFailed = errors.New("failed to load leads")
	// ErrUnsupportedFormat is returned for file types that cannot be read or written
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
