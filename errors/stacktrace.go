package errors

import (
	"github.com/pkg/errors"
)

// stackTracer is implemented by errors created using github.com/pkg/errors
// helpers.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the stack trace attached to the given error or nil
// if no stack trace information is available. Wrapped errors are
// unpacked.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}
