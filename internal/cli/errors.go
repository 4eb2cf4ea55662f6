package cli

import "errors"

var (
	// ErrUnsupportedShell is returned by --completion for an unknown shell.
	ErrUnsupportedShell = errors.New("unsupported shell")
	// ErrUnsupportedFormat is returned by lexicon for an unknown --format.
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrInvalidCount is returned when --count is below 1.
	ErrInvalidCount = errors.New("count must be at least 1")
)
