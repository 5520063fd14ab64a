package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/tokenlock/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceIncrements(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("cntr", "id")

	for want := int64(1); want < 10; want++ {
		got, err := s.NextInt(db)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSequenceValOrdering(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("cntr", "id")

	prev, err := s.NextVal(db)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		next, err := s.NextVal(db)
		require.NoError(t, err)
		if bytes.Compare(prev, next) >= 0 {
			t.Fatalf("keys not ascending: %X then %X", prev, next)
		}
		prev = next
	}
}

func TestSequenceLatest(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("cntr", "id")

	// fresh sequence did not hand out anything yet
	val, _, err := s.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), val)

	_, err = s.NextInt(db)
	require.NoError(t, err)
	_, err = s.NextInt(db)
	require.NoError(t, err)

	val, raw, err := s.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), val)
	assert.Equal(t, EncodeSequence(2), raw)

	// Latest does not modify the state
	val, _, err = s.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), val)
}

func TestSequencesAreIndependent(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("cntr", "id")
	b := NewSequence("other", "id")

	_, err := a.NextInt(db)
	require.NoError(t, err)

	got, err := b.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}
