package source

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("file not found")
	ErrIO       = errors.New("i/o error")
	ErrEncoding = errors.New("invalid text encoding")
)

// EncodingError reports a byte range that is not valid UTF-8.
type EncodingError struct {
	// Offset is the absolute file offset where the invalid range starts.
	Offset uint64
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%v at offset %d: %v", ErrEncoding, e.Offset, e.Err)
}

func (e *EncodingError) Unwrap() []error {
	return []error{ErrEncoding, e.Err}
}

func wrapIO(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}
