package timelock

import (
	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/errors"
	"github.com/iov-one/tokenlock/orm"
	"github.com/iov-one/tokenlock/x"
	"github.com/iov-one/tokenlock/x/cash"
)

const (
	// pay lock creation cost up-front
	createLockCost  int64 = 300
	releaseLockCost int64 = 0
	updateLockCost  int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r tokenlock.Registry, auth x.Authenticator, cashctrl cash.Controller) {
	bucket := NewBucket()

	r.Handle(&CreateMsg{}, CreateLockHandler{auth, bucket, cashctrl})
	r.Handle(&ReleaseMsg{}, ReleaseLockHandler{auth, bucket, cashctrl})
	r.Handle(&UpdateBeneficiaryMsg{}, UpdateBeneficiaryHandler{auth, bucket})
}

// RegisterQuery will register this bucket as "/tokenlocks".
func RegisterQuery(qr tokenlock.QueryRouter) {
	newRawBucket().Register("tokenlocks", qr)
}

// CreateLockHandler creates a token lock and deposits the funds under
// the lock account.
type CreateLockHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	bank   cash.CoinMover
}

var _ tokenlock.Handler = CreateLockHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h CreateLockHandler) Check(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*tokenlock.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenlock.CheckResult{GasAllocated: createLockCost}, nil
}

// Deliver moves the tokens from the source to the lock account if all
// preconditions are met.
func (h CreateLockHandler) Deliver(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*tokenlock.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// apply a default for source
	source := msg.Source
	if source == nil {
		source = x.MainSigner(ctx, h.auth).Address()
	}

	key, err := lockSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}

	lock := &TokenLock{
		Beneficiary: msg.Beneficiary,
		ReleaseTime: msg.ReleaseTime,
		Memo:        msg.Memo,
		Address:     Condition(key).Address(),
	}
	if err := h.bucket.Put(db, key, lock); err != nil {
		return nil, errors.Wrap(err, "cannot store lock")
	}

	// Deposit to the lock account.
	if err := cash.MoveCoins(db, h.bank, source, lock.Address, msg.Amount); err != nil {
		return nil, err
	}
	return &tokenlock.DeliverResult{Data: key}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateLockHandler) validate(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*CreateMsg, error) {
	var msg CreateMsg
	if err := tokenlock.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	if tokenlock.IsExpired(ctx, msg.ReleaseTime) {
		return nil, errors.Wrap(errors.ErrInput, "release time in the past")
	}

	// Source must authorize this (if not set, defaults to MainSigner).
	if msg.Source != nil {
		if !h.auth.HasAddress(ctx, msg.Source) {
			return nil, errors.ErrUnauthorized
		}
	}

	return &msg, nil
}

// ReleaseLockHandler pays the lock balance out to the beneficiary.
type ReleaseLockHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	bank   cash.Controller
}

var _ tokenlock.Handler = ReleaseLockHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h ReleaseLockHandler) Check(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*tokenlock.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenlock.CheckResult{GasAllocated: releaseLockCost}, nil
}

// Deliver moves the full lock balance to the current beneficiary. A
// release of an already drained lock is a no-op. The lock entity is
// kept in the store, so a repeated release does not fail.
func (h ReleaseLockHandler) Deliver(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*tokenlock.DeliverResult, error) {
	msg, lock, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	available, err := h.bank.Balance(db, lock.Address)
	switch {
	case err == nil:
		// all good
	case errors.ErrEmpty.Is(err):
		// The lock wallet was never created or was drained by an
		// earlier release. Nothing to pay out.
		return &tokenlock.DeliverResult{Data: msg.LockID}, nil
	default:
		return nil, err
	}

	// Pay out to whoever is the beneficiary right now.
	if err := cash.MoveCoins(db, h.bank, lock.Address, lock.Beneficiary, available); err != nil {
		return nil, err
	}
	return &tokenlock.DeliverResult{Data: msg.LockID}, nil
}

// validate does all common pre-processing between Check and Deliver.
// Anyone is permitted to release a lock, so no authentication is done
// here. The only requirement is that the release time was reached.
func (h ReleaseLockHandler) validate(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*ReleaseMsg, *TokenLock, error) {
	var msg ReleaseMsg
	if err := tokenlock.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var lock TokenLock
	if err := h.bucket.One(db, msg.LockID, &lock); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load lock from the store")
	}

	if !tokenlock.IsExpired(ctx, lock.ReleaseTime) {
		return nil, nil, ErrTooEarly
	}

	return &msg, &lock, nil
}

// UpdateBeneficiaryHandler transfers the claim on a lock to another
// address.
type UpdateBeneficiaryHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ tokenlock.Handler = UpdateBeneficiaryHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h UpdateBeneficiaryHandler) Check(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*tokenlock.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenlock.CheckResult{GasAllocated: updateLockCost}, nil
}

// Deliver points the lock at the new beneficiary. No coins are moved.
func (h UpdateBeneficiaryHandler) Deliver(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*tokenlock.DeliverResult, error) {
	msg, lock, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	lock.Beneficiary = msg.Beneficiary
	if err := h.bucket.Put(db, msg.LockID, lock); err != nil {
		return nil, errors.Wrap(err, "cannot save")
	}
	return &tokenlock.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
// The beneficiary can be changed at any time, before or after the
// release time, but only by the current beneficiary.
func (h UpdateBeneficiaryHandler) validate(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*UpdateBeneficiaryMsg, *TokenLock, error) {
	var msg UpdateBeneficiaryMsg
	if err := tokenlock.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var lock TokenLock
	if err := h.bucket.One(db, msg.LockID, &lock); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load lock from the store")
	}

	if !h.auth.HasAddress(ctx, lock.Beneficiary) {
		return nil, nil, errors.ErrUnauthorized
	}

	return &msg, &lock, nil
}
