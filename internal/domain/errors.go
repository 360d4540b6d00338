package domain

import "errors"

var (
	// ErrInvalidSpec marks a renderer contract violation: a nil spec or an
	// absent collection. It is a programming error, not a user error.
	ErrInvalidSpec = errors.New("invalid transformation spec")

	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnsupportedDocument is returned by converters for file types they
	// cannot extract text from.
	ErrUnsupportedDocument = errors.New("unsupported document type")
)
