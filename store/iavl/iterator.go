package iavl

import (
	"sync"

	"github.com/iov-one/tokenlock/store"
)

// lazyIterator pulls key-value pairs from a tree walking goroutine on
// demand, so huge domains are never fully loaded into memory.
type lazyIterator struct {
	data    store.Model
	hasMore bool
	read    chan store.Model
	stop    chan struct{}
	once    sync.Once
}

var _ store.Iterator = (*lazyIterator)(nil)

func newLazyIterator() *lazyIterator {
	return &lazyIterator{
		read: make(chan store.Model),
		// ensure we never block when we call Close()
		stop: make(chan struct{}, 1),
	}
}

// add feeds one pair to the reader. It is passed as a callback to the
// tree iteration and returns true to abort the walk.
func (i *lazyIterator) add(key []byte, value []byte) bool {
	m := store.Model{Key: key, Value: value}
	select {
	case i.read <- m:
		return false
	case <-i.stop:
		return true
	}
}

// fin marks the end of the produced data. Must be called by the
// producing goroutine when the tree walk returns.
func (i *lazyIterator) fin() {
	close(i.read)
}

func (i *lazyIterator) Next() error {
	i.data, i.hasMore = <-i.read
	return nil
}

func (i *lazyIterator) Close() {
	i.once.Do(func() {
		i.stop <- struct{}{}
	})
}

func (i *lazyIterator) Valid() bool {
	return i.hasMore
}

func (i *lazyIterator) Key() []byte {
	if !i.hasMore {
		panic("read after end of iterator")
	}
	return i.data.Key
}

func (i *lazyIterator) Value() []byte {
	if !i.hasMore {
		panic("read after end of iterator")
	}
	return i.data.Value
}
