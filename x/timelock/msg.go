package timelock

import (
	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/coin"
	"github.com/iov-one/tokenlock/errors"
	"github.com/iov-one/tokenlock/orm"
)

const (
	pathCreateMsg            = "timelock/create"
	pathReleaseMsg           = "timelock/release"
	pathUpdateBeneficiaryMsg = "timelock/update_beneficiary"

	maxMemoSize int = 128
)

var (
	_ tokenlock.Msg = (*CreateMsg)(nil)
	_ tokenlock.Msg = (*ReleaseMsg)(nil)
	_ tokenlock.Msg = (*UpdateBeneficiaryMsg)(nil)
)

// Path fulfills tokenlock.Msg interface to allow routing.
func (CreateMsg) Path() string {
	return pathCreateMsg
}

// Path fulfills tokenlock.Msg interface to allow routing.
func (ReleaseMsg) Path() string {
	return pathReleaseMsg
}

// Path fulfills tokenlock.Msg interface to allow routing.
func (UpdateBeneficiaryMsg) Path() string {
	return pathUpdateBeneficiaryMsg
}

// Validate makes sure that this is sensible.
func (m *CreateMsg) Validate() error {
	if m.Source != nil {
		if err := m.Source.Validate(); err != nil {
			return errors.Wrap(err, "source")
		}
	}
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	if m.ReleaseTime == 0 {
		return errors.Wrap(errors.ErrInput, "release time is required")
	}
	if err := m.ReleaseTime.Validate(); err != nil {
		return errors.Wrap(err, "release time")
	}
	if len(m.Memo) > maxMemoSize {
		return errors.Wrapf(errors.ErrInput, "memo %s", m.Memo)
	}
	return validateAmount(m.Amount)
}

// Validate makes sure that this is sensible.
func (m *ReleaseMsg) Validate() error {
	return validateLockID(m.LockID)
}

// Validate makes sure that this is sensible.
func (m *UpdateBeneficiaryMsg) Validate() error {
	if err := validateLockID(m.LockID); err != nil {
		return err
	}
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	return nil
}

func validateAmount(amount coin.Coins) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %#v", amount)
	}
	return amount.Validate()
}

func validateLockID(id []byte) error {
	if err := orm.ValidateSequence(id); err != nil {
		return errors.Wrap(err, "lock id")
	}
	return nil
}
