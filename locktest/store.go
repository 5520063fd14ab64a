package locktest

import (
	"testing"

	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/store/iavl"
)

// CommitKVStore returns a committable store backed by an in memory
// database. State is lost when the test finishes.
func CommitKVStore(t testing.TB) tokenlock.CommitKVStore {
	t.Helper()
	db := iavl.MockCommitStore()
	if err := db.LoadLatestVersion(); err != nil {
		t.Fatalf("cannot load the latest version: %s", err)
	}
	return db
}
