// Package errs defines the sentinel errors returned by pcattr.
//
// All recoverable failures wrap one of these values, so callers can match
// with errors.Is regardless of the extra context added at the call site.
package errs

import "errors"

var (
	// ErrInvalidDataType is returned when an attribute carries a component
	// type that is not one of the supported format.DataType values.
	ErrInvalidDataType = errors.New("pcattr: invalid data type")

	// ErrInvalidComponentCount is returned when an attribute is constructed
	// with a zero or negative number of components per value.
	ErrInvalidComponentCount = errors.New("pcattr: invalid component count")

	// ErrMismatchedAttribute is returned by deduplication when the source
	// attribute's component type or count differs from the destination's.
	ErrMismatchedAttribute = errors.New("pcattr: mismatched attribute layout")

	// ErrInvalidValueIndex is returned when a value index addresses a record
	// outside the occupied region of the attribute buffer.
	ErrInvalidValueIndex = errors.New("pcattr: attribute value index out of range")

	// ErrBufferTooSmall is returned when a read extends past the end of the
	// underlying data buffer.
	ErrBufferTooSmall = errors.New("pcattr: data buffer too small")

	// ErrUnsupportedDataType is returned by deduplication when the attribute
	// data type has no usable comparison path.
	ErrUnsupportedDataType = errors.New("pcattr: unsupported data type")
)
