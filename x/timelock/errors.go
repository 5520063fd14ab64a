package timelock

import "github.com/iov-one/tokenlock/errors"

var (
	// ErrTooEarly is returned when a release is requested before the lock
	// release time is reached.
	ErrTooEarly = errors.Register(150, "current time is before release time")
)
