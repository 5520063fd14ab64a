package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/iov-one/tokenlock/store"
)

// number of tree nodes kept in memory
const cacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a store on top of a tendermint database
func NewCommitStore(db dbm.DB) CommitStore {
	tree := iavl.NewMutableTree(db, cacheSize)
	return CommitStore{tree: tree}
}

// MockCommitStore returns a db-less store useful for tests.
// There is no persistence here....
func MockCommitStore() CommitStore {
	return NewCommitStore(dbm.NewMemDB())
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist. Panics on nil key.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	_, value := s.tree.GetVersioned(key, s.tree.Version())
	return value, nil
}

// Commit the next version to disk, and returns info
func (s CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, err
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return err
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap gives us a savepoint to perform actions.
// Writes are buffered in a btree until the wrap is written, then
// applied to the working tree. Only Commit persists them to disk.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	ts := treeStore{tree: s.tree}
	return store.NewBTreeCacheWrap(ts, store.NewNonAtomicBatch(ts), nil)
}

// treeStore exposes the working (uncommitted) state of the mutable
// tree with the KVStore interface
type treeStore struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = treeStore{}

// Get returns nil iff key doesn't exist. Panics on nil key.
func (t treeStore) Get(key []byte) ([]byte, error) {
	_, value := t.tree.Get(key)
	return value, nil
}

// Has checks if a key exists. Panics on nil key.
func (t treeStore) Has(key []byte) (bool, error) {
	return t.tree.Has(key), nil
}

// Set adds a new value to the working tree
func (t treeStore) Set(key, value []byte) error {
	t.tree.Set(key, value)
	return nil
}

// Delete removes from the working tree
func (t treeStore) Delete(key []byte) error {
	t.tree.Remove(key)
	return nil
}

// Iterator over a domain of keys in ascending order. End is exclusive.
// CONTRACT: No writes may happen within a domain while an iterator
// exists over it.
func (t treeStore) Iterator(start, end []byte) (store.Iterator, error) {
	it := newLazyIterator()
	go func() {
		t.tree.IterateRange(start, end, true, it.add)
		it.fin()
	}()
	if err := it.Next(); err != nil {
		return nil, err
	}
	return it, nil
}

// ReverseIterator over a domain of keys in descending order. End is
// exclusive.
// CONTRACT: No writes may happen within a domain while an iterator
// exists over it.
func (t treeStore) ReverseIterator(start, end []byte) (store.Iterator, error) {
	it := newLazyIterator()
	go func() {
		t.tree.IterateRange(start, end, false, it.add)
		it.fin()
	}()
	if err := it.Next(); err != nil {
		return nil, err
	}
	return it, nil
}
