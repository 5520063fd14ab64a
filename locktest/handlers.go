package locktest

import (
	"sync"

	"github.com/iov-one/tokenlock"
)

// Handler implements a mock of tokenlock.Handler.
//
// Each method call is counted. Counter is incremented before the method
// returns, even if the call failed.
type Handler struct {
	mu sync.Mutex

	checkCall   int
	deliverCall int

	// CheckResult is returned by the Check method.
	CheckResult tokenlock.CheckResult
	// CheckErr if set is returned by the Check method.
	CheckErr error

	// DeliverResult is returned by the Deliver method.
	DeliverResult tokenlock.DeliverResult
	// DeliverErr if set is returned by the Deliver method.
	DeliverErr error
}

var _ tokenlock.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*tokenlock.CheckResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.checkCall++
	res := h.CheckResult
	return &res, h.CheckErr
}

func (h *Handler) Deliver(ctx tokenlock.Context, db tokenlock.KVStore, tx tokenlock.Tx) (*tokenlock.DeliverResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.deliverCall++
	res := h.DeliverResult
	return &res, h.DeliverErr
}

// CheckCallCount returns the number of times the Check method was called.
func (h *Handler) CheckCallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.checkCall
}

// DeliverCallCount returns the number of times the Deliver method was called.
func (h *Handler) DeliverCallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.deliverCall
}

// CallCount returns the total number of times the Check and Deliver methods
// were called.
func (h *Handler) CallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.checkCall + h.deliverCall
}
