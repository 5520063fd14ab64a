package store

import "github.com/iov-one/tokenlock"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = tokenlock.ReadOnlyKVStore
type KVStore = tokenlock.KVStore
type Iterator = tokenlock.Iterator
type CacheableKVStore = tokenlock.CacheableKVStore
type KVCacheWrap = tokenlock.KVCacheWrap
type Batch = tokenlock.Batch
type SetDeleter = tokenlock.SetDeleter
type CommitKVStore = tokenlock.CommitKVStore
type CommitID = tokenlock.CommitID
type Model = tokenlock.Model
