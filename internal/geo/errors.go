package geo

import "fmt"

// InvalidArgumentError is the single error kind returned by the generator
// and its collaborators. Message is human readable, Err holds the cause
// when the error wraps a lower level failure.
type InvalidArgumentError struct {
	Err     error
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid argument: %s: %v", e.Message, e.Err)
	}

	return "invalid argument: " + e.Message
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// InvalidArgumentf builds an InvalidArgumentError from a format string.
func InvalidArgumentf(format string, args ...any) error {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

// WrapInvalidArgument wraps err with context. It returns nil for a nil err.
func WrapInvalidArgument(err error, message string) error {
	if err == nil {
		return nil
	}

	return &InvalidArgumentError{Message: message, Err: err}
}
