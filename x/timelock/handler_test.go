package timelock

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/coin"
	"github.com/iov-one/tokenlock/errors"
	"github.com/iov-one/tokenlock/locktest"
	"github.com/iov-one/tokenlock/locktest/assert"
	"github.com/iov-one/tokenlock/store"
	"github.com/iov-one/tokenlock/x/cash"
)

type fixture struct {
	db   tokenlock.KVStore
	ctrl cash.Controller

	source      tokenlock.Condition
	beneficiary tokenlock.Condition
	stranger    tokenlock.Condition
}

func newFixture(t testing.TB) *fixture {
	t.Helper()

	db := store.MemStore()
	ctrl := cash.NewController(cash.NewBucket())

	f := &fixture{
		db:          db,
		ctrl:        ctrl,
		source:      locktest.NewCondition(),
		beneficiary: locktest.NewCondition(),
		stranger:    locktest.NewCondition(),
	}

	// fund the source account
	err := ctrl.CoinMint(db, f.source.Address(), coin.NewCoin(10000, 0, "IOV"))
	assert.Nil(t, err)
	return f
}

// deliver routes the message through a freshly built router,
// authenticated as the given signer.
func (f *fixture) deliver(t testing.TB, signer tokenlock.Condition, at time.Time, msg tokenlock.Msg) (*tokenlock.DeliverResult, error) {
	t.Helper()

	auth := &locktest.Auth{Signer: signer}
	r := tokenlock.NewRouter()
	RegisterRoutes(r, auth, f.ctrl)

	ctx := tokenlock.WithBlockTime(context.Background(), at)
	return r.Deliver(ctx, f.db, &locktest.Tx{Msg: msg})
}

// createLock stores a lock over the given amount and returns its key.
func (f *fixture) createLock(t testing.TB, amount coin.Coin, releaseTime tokenlock.UnixTime) []byte {
	t.Helper()

	res, err := f.deliver(t, f.source, time.Unix(1, 0), &CreateMsg{
		Source:      f.source.Address(),
		Beneficiary: f.beneficiary.Address(),
		Amount:      coin.Coins{&amount},
		ReleaseTime: releaseTime,
	})
	assert.Nil(t, err)
	return res.Data
}

func TestCreateLock(t *testing.T) {
	f := newFixture(t)

	lockID := f.createLock(t, coin.NewCoin(25, 0, "IOV"), 1000)
	assert.Equal(t, locktest.SequenceID(1), lockID)

	// the funds moved from the source to the lock account
	locked, err := f.ctrl.Balance(f.db, Condition(lockID).Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(25, 0, "IOV")}, locked)
	left, err := f.ctrl.Balance(f.db, f.source.Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(9975, 0, "IOV")}, left)

	// the lock entity is stored
	var lock TokenLock
	assert.Nil(t, NewBucket().One(f.db, lockID, &lock))
	assert.Equal(t, f.beneficiary.Address(), lock.Beneficiary)
	assert.Equal(t, tokenlock.UnixTime(1000), lock.ReleaseTime)

	// a second lock gets the next sequence value
	lockID = f.createLock(t, coin.NewCoin(5, 0, "IOV"), 2000)
	assert.Equal(t, locktest.SequenceID(2), lockID)
}

func TestCreateLockAuthorization(t *testing.T) {
	f := newFixture(t)

	// a lock over someone else's funds must not be created
	_, err := f.deliver(t, f.stranger, time.Unix(1, 0), &CreateMsg{
		Source:      f.source.Address(),
		Beneficiary: f.beneficiary.Address(),
		Amount:      coin.Coins{coin.NewCoinp(25, 0, "IOV")},
		ReleaseTime: 1000,
	})
	if !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	// without an explicit source the main signer pays
	_, err = f.deliver(t, f.source, time.Unix(1, 0), &CreateMsg{
		Beneficiary: f.beneficiary.Address(),
		Amount:      coin.Coins{coin.NewCoinp(25, 0, "IOV")},
		ReleaseTime: 1000,
	})
	assert.Nil(t, err)
	left, err := f.ctrl.Balance(f.db, f.source.Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(9975, 0, "IOV")}, left)
}

func TestCreateLockReleaseTimeInThePast(t *testing.T) {
	f := newFixture(t)

	_, err := f.deliver(t, f.source, time.Unix(5000, 0), &CreateMsg{
		Source:      f.source.Address(),
		Beneficiary: f.beneficiary.Address(),
		Amount:      coin.Coins{coin.NewCoinp(25, 0, "IOV")},
		ReleaseTime: 1000,
	})
	if !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestReleaseLock(t *testing.T) {
	const year = 365 * 24 * time.Hour

	now := tokenlock.AsUnixTime(time.Unix(1500000000, 0))
	releaseTime := now.Add(2 * year)

	f := newFixture(t)
	lockID := f.createLock(t, coin.NewCoin(25, 0, "IOV"), releaseTime)

	// ten days before the release time the funds must not move
	_, err := f.deliver(t, f.stranger, releaseTime.Add(-10*24*time.Hour).Time(), &ReleaseMsg{LockID: lockID})
	if !ErrTooEarly.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	if _, err := f.ctrl.Balance(f.db, f.beneficiary.Address()); !errors.ErrEmpty.Is(err) {
		t.Fatalf("beneficiary was paid early: %+v", err)
	}

	// ten days after the release time anyone can release
	_, err = f.deliver(t, f.stranger, releaseTime.Add(10*24*time.Hour).Time(), &ReleaseMsg{LockID: lockID})
	assert.Nil(t, err)

	paid, err := f.ctrl.Balance(f.db, f.beneficiary.Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(25, 0, "IOV")}, paid)

	locked, err := f.ctrl.Balance(f.db, Condition(lockID).Address())
	assert.Nil(t, err)
	if !locked.IsEmpty() {
		t.Fatalf("lock account still holds %q", locked)
	}
}

func TestReleaseLockAtExactReleaseTime(t *testing.T) {
	f := newFixture(t)
	lockID := f.createLock(t, coin.NewCoin(25, 0, "IOV"), 1000)

	// the deadline is inclusive
	_, err := f.deliver(t, f.stranger, time.Unix(1000, 0), &ReleaseMsg{LockID: lockID})
	assert.Nil(t, err)

	paid, err := f.ctrl.Balance(f.db, f.beneficiary.Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(25, 0, "IOV")}, paid)
}

func TestReleaseLockErrorMessage(t *testing.T) {
	f := newFixture(t)
	lockID := f.createLock(t, coin.NewCoin(25, 0, "IOV"), 1000)

	_, err := f.deliver(t, f.stranger, time.Unix(999, 0), &ReleaseMsg{LockID: lockID})
	if err == nil {
		t.Fatal("early release must fail")
	}
	assert.Equal(t, "current time is before release time", err.Error())
}

func TestReleaseLockTwice(t *testing.T) {
	f := newFixture(t)
	lockID := f.createLock(t, coin.NewCoin(25, 0, "IOV"), 1000)

	_, err := f.deliver(t, f.stranger, time.Unix(2000, 0), &ReleaseMsg{LockID: lockID})
	assert.Nil(t, err)

	// the lock is kept in the store and a repeated release is a no-op
	_, err = f.deliver(t, f.stranger, time.Unix(3000, 0), &ReleaseMsg{LockID: lockID})
	assert.Nil(t, err)

	paid, err := f.ctrl.Balance(f.db, f.beneficiary.Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(25, 0, "IOV")}, paid)
}

func TestReleaseUnknownLock(t *testing.T) {
	f := newFixture(t)

	_, err := f.deliver(t, f.stranger, time.Unix(2000, 0), &ReleaseMsg{LockID: locktest.SequenceID(123)})
	if !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestUpdateBeneficiary(t *testing.T) {
	f := newFixture(t)
	lockID := f.createLock(t, coin.NewCoin(25, 0, "IOV"), 1000)

	newBeneficiary := locktest.NewCondition()

	// only the current beneficiary may reassign the claim
	_, err := f.deliver(t, f.stranger, time.Unix(500, 0), &UpdateBeneficiaryMsg{
		LockID:      lockID,
		Beneficiary: newBeneficiary.Address(),
	})
	if !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	_, err = f.deliver(t, f.beneficiary, time.Unix(500, 0), &UpdateBeneficiaryMsg{
		LockID:      lockID,
		Beneficiary: newBeneficiary.Address(),
	})
	assert.Nil(t, err)

	var lock TokenLock
	assert.Nil(t, NewBucket().One(f.db, lockID, &lock))
	assert.Equal(t, newBeneficiary.Address(), lock.Beneficiary)

	// after the reassignment the old beneficiary has no power
	_, err = f.deliver(t, f.beneficiary, time.Unix(600, 0), &UpdateBeneficiaryMsg{
		LockID:      lockID,
		Beneficiary: f.beneficiary.Address(),
	})
	if !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	// the release pays out to the beneficiary at release time
	_, err = f.deliver(t, f.stranger, time.Unix(2000, 0), &ReleaseMsg{LockID: lockID})
	assert.Nil(t, err)

	paid, err := f.ctrl.Balance(f.db, newBeneficiary.Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(25, 0, "IOV")}, paid)
	if _, err := f.ctrl.Balance(f.db, f.beneficiary.Address()); !errors.ErrEmpty.Is(err) {
		t.Fatalf("old beneficiary was paid: %+v", err)
	}
}

func TestUpdateBeneficiaryAfterRelease(t *testing.T) {
	f := newFixture(t)
	lockID := f.createLock(t, coin.NewCoin(25, 0, "IOV"), 1000)

	// reassignment is legal also once the lock expired
	newBeneficiary := locktest.NewCondition()
	_, err := f.deliver(t, f.beneficiary, time.Unix(5000, 0), &UpdateBeneficiaryMsg{
		LockID:      lockID,
		Beneficiary: newBeneficiary.Address(),
	})
	assert.Nil(t, err)

	_, err = f.deliver(t, f.stranger, time.Unix(5000, 0), &ReleaseMsg{LockID: lockID})
	assert.Nil(t, err)
	paid, err := f.ctrl.Balance(f.db, newBeneficiary.Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(25, 0, "IOV")}, paid)
}

func TestReleaseLockOnCommitStore(t *testing.T) {
	commit := locktest.CommitKVStore(t)

	f := &fixture{
		ctrl:        cash.NewController(cash.NewBucket()),
		source:      locktest.NewCondition(),
		beneficiary: locktest.NewCondition(),
		stranger:    locktest.NewCondition(),
	}

	// fund and create the lock within one block
	cache := commit.CacheWrap()
	f.db = cache
	assert.Nil(t, f.ctrl.CoinMint(cache, f.source.Address(), coin.NewCoin(100, 0, "IOV")))
	lockID := f.createLock(t, coin.NewCoin(25, 0, "IOV"), 1000)
	assert.Nil(t, cache.Write())
	if _, err := commit.Commit(); err != nil {
		t.Fatalf("cannot commit: %+v", err)
	}

	// release in a later block
	cache = commit.CacheWrap()
	f.db = cache
	_, err := f.deliver(t, f.stranger, time.Unix(2000, 0), &ReleaseMsg{LockID: lockID})
	assert.Nil(t, err)
	assert.Nil(t, cache.Write())
	if _, err := commit.Commit(); err != nil {
		t.Fatalf("cannot commit: %+v", err)
	}

	// the payout survived the commit
	paid, err := f.ctrl.Balance(commit.CacheWrap(), f.beneficiary.Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(25, 0, "IOV")}, paid)
}

func TestRegisterQuery(t *testing.T) {
	qr := tokenlock.NewQueryRouter()
	RegisterQuery(qr)
	if qr.Handler("/tokenlocks") == nil {
		t.Fatal("token locks bucket not registered")
	}
}
