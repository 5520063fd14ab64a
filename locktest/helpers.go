package locktest

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/iov-one/tokenlock"
)

// NewCondition returns a mocked condition with a random, unique data. Each
// call returns a different condition.
func NewCondition() tokenlock.Condition {
	data := make([]byte, 32)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return tokenlock.NewCondition("mock", "random", data)
}

// RandomAddr returns a random unique address.
func RandomAddr(t testing.TB) tokenlock.Address {
	t.Helper()
	addr := make(tokenlock.Address, tokenlock.AddressLength)
	if _, err := rand.Read(addr); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	return addr
}

// DecodeAddr decodes a hex serialized address. This function is meant to be
// used in tests, where the address is hardcoded.
func DecodeAddr(t testing.TB, enc string) tokenlock.Address {
	t.Helper()
	raw, err := hex.DecodeString(enc)
	if err != nil {
		t.Fatalf("cannot decode %q address: %s", enc, err)
	}
	addr := tokenlock.Address(raw)
	if err := addr.Validate(); err != nil {
		t.Fatalf("invalid %q address: %s", enc, err)
	}
	return addr
}

// SequenceID returns the binary representation of a sequence counter as
// stored by the orm package.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
