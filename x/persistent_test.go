package x_test

import (
	"testing"

	"github.com/iov-one/tokenlock/coin"
	"github.com/iov-one/tokenlock/locktest/assert"
	"github.com/iov-one/tokenlock/x"
)

func TestMustMarshalRoundtrip(t *testing.T) {
	c := coin.NewCoin(52, 12345, "FOO")
	bz := x.MustMarshalValid(&c)

	var loaded coin.Coin
	x.MustUnmarshal(&loaded, bz)
	if !loaded.Equals(c) {
		t.Fatalf("unexpected coin: %q", loaded)
	}
}

func TestMustValidate(t *testing.T) {
	valid := coin.NewCoin(1, 0, "IOV")
	x.MustValidate(&valid)

	invalid := coin.NewCoin(1, 0, "invalid ticker")
	assert.Panics(t, func() {
		x.MustValidate(&invalid)
	})
	assert.Panics(t, func() {
		x.MustMarshalValid(&invalid)
	})
}
