package cash

import (
	"testing"

	"github.com/iov-one/tokenlock/coin"
	"github.com/iov-one/tokenlock/errors"
	"github.com/iov-one/tokenlock/locktest"
	"github.com/iov-one/tokenlock/locktest/assert"
	"github.com/iov-one/tokenlock/store"
)

func TestBalance(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()
	ctrl := NewController(bucket)

	addr := locktest.RandomAddr(t)
	other := locktest.RandomAddr(t)

	wallet, err := WalletWith(addr, coin.NewCoinp(100, 0, "IOV"))
	assert.Nil(t, err)
	assert.Nil(t, bucket.Save(db, wallet))

	cases := map[string]struct {
		addr      []byte
		wantCoins coin.Coins
		wantErr   *errors.Error
	}{
		"existing account": {
			addr:      addr,
			wantCoins: coin.Coins{coin.NewCoinp(100, 0, "IOV")},
		},
		"unknown account": {
			addr:    other,
			wantErr: errors.ErrEmpty,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			coins, err := ctrl.Balance(db, tc.addr)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}
			assert.Nil(t, err)
			if !coins.Equals(tc.wantCoins) {
				t.Fatalf("unexpected balance: %q", coins)
			}
		})
	}
}

func TestMoveCoins(t *testing.T) {
	addr1 := locktest.RandomAddr(t)
	addr2 := locktest.RandomAddr(t)
	addr3 := locktest.RandomAddr(t)

	cc := "MONY"
	bank := coin.NewCoin(50000, 0, cc)
	send := coin.NewCoin(300, 0, cc)

	db := store.MemStore()
	bucket := NewBucket()
	ctrl := NewController(bucket)

	// cannot send money from an empty account
	err := ctrl.MoveCoins(db, addr1, addr2, send)
	if !errors.ErrEmpty.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	// zero amount is a no-op, even between empty accounts
	assert.Nil(t, ctrl.MoveCoins(db, addr1, addr2, coin.NewCoin(0, 0, cc)))

	// fund account 1
	assert.Nil(t, ctrl.CoinMint(db, addr1, bank))

	// cannot send negative amounts
	err = ctrl.MoveCoins(db, addr1, addr2, send.Negative())
	if !errors.ErrAmount.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	// cannot send more than we have
	err = ctrl.MoveCoins(db, addr1, addr2, coin.NewCoin(300000, 0, cc))
	if !errors.ErrAmount.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	// cannot send a ticker we do not have
	err = ctrl.MoveCoins(db, addr1, addr2, coin.NewCoin(5, 0, "OTHR"))
	if !errors.ErrAmount.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	// a proper send reduces sender and credits the recipient
	assert.Nil(t, ctrl.MoveCoins(db, addr1, addr2, send))
	w1, err := ctrl.Balance(db, addr1)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(49700, 0, cc)}, w1)
	w2, err := ctrl.Balance(db, addr2)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(300, 0, cc)}, w2)

	// recipient can send it along
	assert.Nil(t, ctrl.MoveCoins(db, addr2, addr3, coin.NewCoin(100, 0, cc)))
	w2, err = ctrl.Balance(db, addr2)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(200, 0, cc)}, w2)
	w3, err := ctrl.Balance(db, addr3)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(100, 0, cc)}, w3)
}

func TestCoinMint(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	addr := locktest.RandomAddr(t)

	// mint on a fresh account creates the wallet
	assert.Nil(t, ctrl.CoinMint(db, addr, coin.NewCoin(10, 0, "IOV")))
	coins, err := ctrl.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(10, 0, "IOV")}, coins)

	// minting more accumulates
	assert.Nil(t, ctrl.CoinMint(db, addr, coin.NewCoin(5, 0, "IOV")))
	coins, err = ctrl.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(15, 0, "IOV")}, coins)

	// the lord taketh away
	assert.Nil(t, ctrl.CoinMint(db, addr, coin.NewCoin(-15, 0, "IOV")))
	coins, err = ctrl.Balance(db, addr)
	assert.Nil(t, err)
	if !coins.IsEmpty() {
		t.Fatalf("unexpected balance: %q", coins)
	}
}
