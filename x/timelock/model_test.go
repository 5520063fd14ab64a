package timelock

import (
	"strings"
	"testing"

	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/errors"
	"github.com/iov-one/tokenlock/locktest"
	"github.com/iov-one/tokenlock/locktest/assert"
	"github.com/iov-one/tokenlock/store"
)

func TestTokenLockValidate(t *testing.T) {
	beneficiary := locktest.NewCondition().Address()
	addr := Condition(locktest.SequenceID(1)).Address()

	cases := map[string]struct {
		lock    *TokenLock
		wantErr *errors.Error
	}{
		"valid lock": {
			lock: &TokenLock{
				Beneficiary: beneficiary,
				ReleaseTime: 1000,
				Memo:        "vesting grant",
				Address:     addr,
			},
		},
		"missing beneficiary": {
			lock: &TokenLock{
				ReleaseTime: 1000,
				Address:     addr,
			},
			wantErr: errors.ErrEmpty,
		},
		"missing release time": {
			lock: &TokenLock{
				Beneficiary: beneficiary,
				Address:     addr,
			},
			wantErr: errors.ErrInput,
		},
		"memo too long": {
			lock: &TokenLock{
				Beneficiary: beneficiary,
				ReleaseTime: 1000,
				Memo:        strings.Repeat("x", maxMemoSize+1),
				Address:     addr,
			},
			wantErr: errors.ErrInput,
		},
		"missing address": {
			lock: &TokenLock{
				Beneficiary: beneficiary,
				ReleaseTime: 1000,
			},
			wantErr: errors.ErrEmpty,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.lock.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestTokenLockCopy(t *testing.T) {
	lock := &TokenLock{
		Beneficiary: locktest.NewCondition().Address(),
		ReleaseTime: 1000,
		Memo:        "a",
		Address:     Condition(locktest.SequenceID(1)).Address(),
	}
	cpy := lock.Copy().(*TokenLock)
	assert.Equal(t, lock, cpy)

	// mutating the copy must not affect the original
	cpy.Beneficiary[0]++
	if lock.Beneficiary.Equals(cpy.Beneficiary) {
		t.Fatal("copy is not independent")
	}
}

func TestLockCondition(t *testing.T) {
	// the condition is derived from the key only
	a := Condition(locktest.SequenceID(1))
	b := Condition(locktest.SequenceID(1))
	c := Condition(locktest.SequenceID(2))
	assert.Equal(t, a, b)
	if a.Equals(c) {
		t.Fatal("different keys produce the same condition")
	}
	assert.Nil(t, a.Validate())
	assert.Nil(t, a.Address().Validate())
}

func TestBucketRoundtrip(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()

	lock := &TokenLock{
		Beneficiary: locktest.NewCondition().Address(),
		ReleaseTime: 1000,
		Address:     Condition(locktest.SequenceID(1)).Address(),
	}
	assert.Nil(t, bucket.Put(db, locktest.SequenceID(1), lock))

	var loaded TokenLock
	assert.Nil(t, bucket.One(db, locktest.SequenceID(1), &loaded))
	assert.Equal(t, lock, &loaded)
	assert.Equal(t, tokenlock.UnixTime(1000), loaded.ReleaseTime)

	if err := bucket.One(db, locktest.SequenceID(2), &loaded); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}
