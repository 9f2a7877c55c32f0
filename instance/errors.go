package instance

import "errors"

var (
	// ErrSyntax indicates input that cannot be decoded into an instance.
	ErrSyntax = errors.New("instance: syntax error")

	// ErrUnsupported indicates an unknown encoding name.
	ErrUnsupported = errors.New("instance: unsupported encoding")
)
