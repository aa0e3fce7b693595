package puzzle

import "errors"

var (
	// ErrInput indicates the input could not be read.
	ErrInput = errors.New("puzzle: input unavailable")

	// ErrFormat indicates the input does not have the expected line structure.
	ErrFormat = errors.New("puzzle: file format error")

	// ErrUnknownSolution indicates a lookup for a name that is not registered.
	ErrUnknownSolution = errors.New("puzzle: unknown solution")
)

// FormatError describes how an input's line structure is wrong.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return "file format error: " + e.Reason }

// Unwrap lets errors.Is match ErrFormat.
func (e *FormatError) Unwrap() error { return ErrFormat }
