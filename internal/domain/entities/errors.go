package entities

import "errors"

var (
	// ErrInvalidArgument is wrapped by every settings and configuration validation failure.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when an operation matches no path in the repository tree.
	ErrNotFound = errors.New("not found")

	// ErrNotAFile is returned when a file operation is given a directory.
	ErrNotAFile = errors.New("not a file")

	// ErrUnsupported is returned by operations the backend cannot express.
	ErrUnsupported = errors.New("unsupported operation")
)
