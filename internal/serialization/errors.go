package serialization

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrCorruptData        = errors.New("corrupt data")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrTruncated          = errors.New("unexpected end of data")
)

// CorruptError marks a failure caused by the content of a file rather than
// by access to it. It matches ErrCorruptData and unwraps to the cause.
type CorruptError struct {
	Err error
}

// Error implements the error interface.
func (e *CorruptError) Error() string {
	return "corrupt data: " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *CorruptError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCorruptData.
func (e *CorruptError) Is(target error) bool {
	return target == ErrCorruptData
}

func corrupt(err error) error {
	return &CorruptError{Err: err}
}

func corruptf(format string, args ...any) error {
	return corrupt(errors.Errorf(format, args...))
}

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type    string // Type of error (e.g., "size_mismatch", "invalid_shape")
	Field   string // Header field involved
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %s", e.Type, e.Field, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}
