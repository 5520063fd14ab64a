package timelock

import (
	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/errors"
	"github.com/iov-one/tokenlock/orm"
)

// BucketName is where the token locks are stored.
const BucketName = "tlock"

var _ orm.Model = (*TokenLock)(nil)

// Validate ensures the lock is valid.
func (t *TokenLock) Validate() error {
	if err := t.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	if t.ReleaseTime == 0 {
		// Zero release time is a valid value that dates to 1970-01-01.
		// We know that this value is in the past and makes no sense.
		// Most likely the value was not provided and a zero value
		// remained.
		return errors.Wrap(errors.ErrInput, "release time is required")
	}
	if err := t.ReleaseTime.Validate(); err != nil {
		return errors.Wrap(err, "release time")
	}
	if len(t.Memo) > maxMemoSize {
		return errors.Wrapf(errors.ErrInput, "memo %s", t.Memo)
	}
	if err := t.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return nil
}

// Copy produces an independent copy of this lock.
func (t *TokenLock) Copy() orm.CloneableData {
	return &TokenLock{
		Beneficiary: t.Beneficiary.Clone(),
		ReleaseTime: t.ReleaseTime,
		Memo:        t.Memo,
		Address:     t.Address.Clone(),
	}
}

// Condition calculates the lock condition for a given lock key. The
// address of this condition owns the wallet holding the locked funds.
func Condition(key []byte) tokenlock.Condition {
	return tokenlock.NewCondition("timelock", "seq", key)
}

// NewBucket returns a bucket for keeping the token locks.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(newRawBucket())
}

func newRawBucket() orm.Bucket {
	return orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &TokenLock{}))
}

var lockSeq = orm.NewSequence("timelock", "id")
