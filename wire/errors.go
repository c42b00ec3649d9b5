package wire

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Decoding and encoding errors. Each kind is a distinct sentinel so callers can
// tell a malformed varint from an unsupported wire type or an oversized value.
var (
	ErrVarintTooLong       = errors.New("varint too long")
	ErrVarintOverflow      = errors.New("varint overflow")
	ErrUnexpectedEOF       = errors.New("unexpected EOF")
	ErrUnsupportedWireType = errors.New("unsupported wire type")
	ErrValueOutOfRange     = errors.New("value out of 64-bit range")
)

// FieldError represents a decoding error with the path of field numbers that
// led to it.
type FieldError struct {
	FieldPath []FieldNumber // outermost first, e.g. [3 2 4] for tile.layers.features.geometry
	Offset    int           // byte offset of the innermost field's tag
	Err       error         // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	parts := make([]string, len(e.FieldPath))
	for i, n := range e.FieldPath {
		parts[i] = strconv.Itoa(int(n))
	}
	return fmt.Sprintf("field %s at offset %d: %v", strings.Join(parts, "."), e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// wrapWithField wraps an error with a field number. Errors already carrying a
// path get the number prepended, so nested messages read outermost first.
func wrapWithField(err error, num FieldNumber, offset int) error {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{
			FieldPath: append([]FieldNumber{num}, fe.FieldPath...),
			Offset:    fe.Offset,
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []FieldNumber{num},
		Offset:    offset,
		Err:       err,
	}
}
