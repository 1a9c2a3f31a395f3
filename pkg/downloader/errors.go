package downloader

import "fmt"

// ProgramError is the one error type surfaced to the user. Callers tell
// failures apart by message; the cause, if any, stays reachable through
// errors.Is and errors.As.
type ProgramError struct {
	Message string
	Err     error
}

// NewProgramError returns a ProgramError with a formatted message. A %w verb
// in format records the wrapped error as the cause.
func NewProgramError(format string, args ...interface{}) *ProgramError {
	err := fmt.Errorf(format, args...)
	return &ProgramError{Message: err.Error(), Err: unwrapOnce(err)}
}

func (e *ProgramError) Error() string {
	return e.Message
}

func (e *ProgramError) Unwrap() error {
	return e.Err
}

func unwrapOnce(err error) error {
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}
	return nil
}
