package orm

import (
	"github.com/iov-one/tokenlock/errors"
)

var _ Model = (*Counter)(nil)

// Counter is a trivial model wrapping one number,
// mostly useful for tests
type Counter struct {
	Count int64
}

// Marshal encodes the counter as 8 bytes
func (c *Counter) Marshal() ([]byte, error) {
	return EncodeSequence(c.Count), nil
}

// Unmarshal parses 8 bytes into the counter
func (c *Counter) Unmarshal(bz []byte) error {
	if len(bz) != 8 {
		return errors.Wrap(errors.ErrInput, "counter must be 8 bytes")
	}
	c.Count = DecodeSequence(bz)
	return nil
}

// Validate rejects negative counters
func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative counter")
	}
	return nil
}

// Copy produces a new copy to fulfill the Model interface
func (c *Counter) Copy() CloneableData {
	return &Counter{Count: c.Count}
}

// NewCounterBucket creates a bucket holding counters, keyed by a
// default sequence
func NewCounterBucket(name string) Bucket {
	return NewBucket(name, NewSimpleObj(nil, &Counter{}))
}
