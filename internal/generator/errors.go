package generator

import "errors"

// Errors reported by a generation run. They are wrapped with context and can
// be matched with errors.Is.
var (
	ErrMissingArgument   = errors.New("missing task file argument")
	ErrMissingOption     = errors.New("missing option")
	ErrInvalidOptionType = errors.New("option must be of type string")
	ErrDirectoryCreation = errors.New("unable to create destination directory")
	ErrWriteFailed       = errors.New("unable to write task file")
)
