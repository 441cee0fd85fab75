package cmdflags

import (
	"errors"
	"fmt"
)

var (
	// ErrNoArguments is returned by Parse for an empty argument vector,
	// which lacks even the program name.
	ErrNoArguments = errors.New("cmdflags: empty argument vector")

	// ErrNilConfig is returned by GetConfig and SetConfig when given nil.
	ErrNilConfig = errors.New("cmdflags: nil config")

	// ErrStop may be returned by handlers that end parsing without having
	// failed, such as a handler printing the help message.
	ErrStop = errors.New("cmdflags: stop requested")
)

// StopError is returned by Parse when a handler asked to stop parsing by
// returning a non-nil error. It is not a parse failure: the index returned
// alongside it is valid and points past the argument holding the option.
type StopError struct {
	Option Option
	Index  int // index of the argument holding the option
	Err    error
}

func (e *StopError) Error() string {
	return fmt.Sprintf("cmdflags: option %s stopped parsing: %v", e.Option, e.Err)
}

func (e *StopError) Unwrap() error { return e.Err }

// IsStop reports whether err, as returned by Parse, is a handler request
// to stop rather than a failure.
func IsStop(err error) bool {
	var stop *StopError
	return errors.As(err, &stop)
}
