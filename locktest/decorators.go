package locktest

import "github.com/iov-one/tokenlock"

// Decorator is a mock implementation of the tokenlock.Decorator interface.
//
// Each method call is counted.
type Decorator struct {
	checkCall   int
	deliverCall int

	// CheckErr if set is returned by the Check method before calling the
	// wrapped handler.
	CheckErr error

	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ tokenlock.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx, next tokenlock.Checker) (*tokenlock.CheckResult, error) {
	d.checkCall++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx, next tokenlock.Deliverer) (*tokenlock.DeliverResult, error) {
	d.deliverCall++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate wraps given handler with provided decorator.
func Decorate(h tokenlock.Handler, d tokenlock.Decorator) tokenlock.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn tokenlock.Handler
	dc tokenlock.Decorator
}

var _ tokenlock.Handler = (*decoratedHandler)(nil)

func (h *decoratedHandler) Check(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*tokenlock.CheckResult, error) {
	return h.dc.Check(ctx, db, tx, h.hn)
}

func (h *decoratedHandler) Deliver(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*tokenlock.DeliverResult, error) {
	return h.dc.Deliver(ctx, db, tx, h.hn)
}
