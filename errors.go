package insta

import "errors"

// Registration errors.
var (
	// ErrNilCallback is returned when a dynamic redaction or assertion
	// is registered with a nil callback.
	ErrNilCallback = errors.New("insta: callback is nil")

	// ErrUnsupportedFormat is returned when a tool config file has an
	// extension that is neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("insta: unsupported tool config format")
)
