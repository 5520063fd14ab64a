package orm

import (
	"testing"

	"github.com/iov-one/tokenlock/errors"
	"github.com/iov-one/tokenlock/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket(NewCounterBucket("cntr"))

	key := []byte("c1")
	require.NoError(t, b.Put(db, key, &Counter{Count: 1}))

	var c Counter
	require.NoError(t, b.One(db, key, &c))
	assert.Equal(t, int64(1), c.Count)

	require.NoError(t, b.Has(db, key))
	require.NoError(t, b.Delete(db, key))

	if err := b.One(db, key, &c); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
	if err := b.Has(db, key); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
	if err := b.Delete(db, key); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestModelBucketPutInvalid(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket(NewCounterBucket("cntr"))

	err := b.Put(db, []byte("c1"), &Counter{Count: -1})
	assert.Error(t, err)
}
