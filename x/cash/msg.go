package cash

import (
	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/errors"
)

const (
	sendTxCost int64 = 100

	maxMemoSize = 128
	maxRefSize  = 64
)

var _ tokenlock.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	amt := s.GetAmount()
	if amt == nil || !amt.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive send amount: %v", amt)
	}
	if err := amt.Validate(); err != nil {
		return err
	}
	if err := s.GetSource().Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := s.GetDestination().Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if len(s.GetMemo()) > maxMemoSize {
		return errors.Wrap(errors.ErrInput, "memo too long")
	}
	if len(s.GetRef()) > maxRefSize {
		return errors.Wrap(errors.ErrInput, "ref too long")
	}
	return nil
}

// DefaultSource makes sure there is a payer.
// If it was already set, returns s.
// If none was set, returns a new SendMsg with the source set
func (s *SendMsg) DefaultSource(addr []byte) *SendMsg {
	if len(s.GetSource()) != 0 {
		return s
	}
	return &SendMsg{
		Source:      addr,
		Destination: s.GetDestination(),
		Amount:      s.GetAmount(),
		Memo:        s.GetMemo(),
		Ref:         s.GetRef(),
	}
}
