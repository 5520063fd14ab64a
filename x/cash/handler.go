package cash

import (
	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/errors"
	"github.com/iov-one/tokenlock/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r tokenlock.Registry, auth x.Authenticator, control Controller) {
	r.Handle(&SendMsg{}, NewSendHandler(auth, control))
}

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr tokenlock.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// SendHandler will handle sending coins
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ tokenlock.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h SendHandler) Check(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*tokenlock.CheckResult, error) {
	var msg SendMsg
	if err := tokenlock.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// make sure we have permission from the source
	if !h.auth.HasAddress(ctx, msg.GetSource()) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "source %q", msg.GetSource())
	}

	// return cost
	return &tokenlock.CheckResult{GasAllocated: sendTxCost}, nil
}

// Deliver moves the tokens from source to destination if
// all preconditions are met
func (h SendHandler) Deliver(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*tokenlock.DeliverResult, error) {
	var msg SendMsg
	if err := tokenlock.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// make sure we have permission from the source
	if !h.auth.HasAddress(ctx, msg.GetSource()) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "source %q", msg.GetSource())
	}

	// move the money
	if err := h.control.MoveCoins(db, msg.GetSource(), msg.GetDestination(), *msg.GetAmount()); err != nil {
		return nil, err
	}

	return &tokenlock.DeliverResult{}, nil
}
