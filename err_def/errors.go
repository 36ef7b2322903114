// Package err_def holds the error kinds shared by every layer of the
// apartment store.  Callers classify failures with errors.Is; the layer
// that detects a failure attaches the kind once, and everything above
// passes the error through unchanged.
package err_def

import "errors"

var (
	// ErrInvalidArgument covers nil capabilities, malformed records, and
	// out-of-range inputs detected before any side effect.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSizeOverflow means a byte count or identifier exceeded the
	// addressable range.
	ErrSizeOverflow = errors.New("size overflow")

	// ErrIO wraps open/read/write/seek/close failures from the OS.
	ErrIO = errors.New("i/o failure")

	// ErrCorruption means the data file's length is not a multiple of the
	// record width, so record boundaries cannot be trusted.
	ErrCorruption = errors.New("data file corrupted")

	// ErrNotFound means no record carries the requested identifier.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means two records share an identifier that must be
	// unique across the file.
	ErrConflict = errors.New("duplicate identifier")

	// ErrAlreadyExists means a file creation was refused because the path
	// is already present and overwriting was not requested.
	ErrAlreadyExists = errors.New("file already exists")
)
