package cfgdoc

import "errors"

var (
	// ErrEmptyName indicates a section or key name that must not be empty.
	ErrEmptyName = errors.New("empty name")
	// ErrNotFound indicates a strict lookup of a missing section or key.
	ErrNotFound = errors.New("not found")
	// ErrOutOfRange indicates an index outside the valid range.
	ErrOutOfRange = errors.New("index out of range")
	// ErrConversion indicates a value that could not be coerced to the requested type.
	ErrConversion = errors.New("conversion failed")
	// ErrUnsupportedType indicates a type outside the supported scalar set.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrDecode indicates malformed input to a codec.
	ErrDecode = errors.New("decode failed")
)
