package cash

import (
	"context"
	"testing"

	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/coin"
	"github.com/iov-one/tokenlock/errors"
	"github.com/iov-one/tokenlock/locktest"
	"github.com/iov-one/tokenlock/locktest/assert"
	"github.com/iov-one/tokenlock/store"
)

func TestSendHandler(t *testing.T) {
	source := locktest.NewCondition()
	dest := locktest.NewCondition()

	cases := map[string]struct {
		signer  tokenlock.Condition
		initial coin.Coins
		msg     *SendMsg
		wantErr *errors.Error
	}{
		"successful send": {
			signer:  source,
			initial: coin.Coins{coin.NewCoinp(100, 0, "IOV")},
			msg: &SendMsg{
				Source:      source.Address(),
				Destination: dest.Address(),
				Amount:      coin.NewCoinp(40, 0, "IOV"),
			},
		},
		"source did not sign": {
			signer:  dest,
			initial: coin.Coins{coin.NewCoinp(100, 0, "IOV")},
			msg: &SendMsg{
				Source:      source.Address(),
				Destination: dest.Address(),
				Amount:      coin.NewCoinp(40, 0, "IOV"),
			},
			wantErr: errors.ErrUnauthorized,
		},
		"insufficient funds": {
			signer:  source,
			initial: coin.Coins{coin.NewCoinp(10, 0, "IOV")},
			msg: &SendMsg{
				Source:      source.Address(),
				Destination: dest.Address(),
				Amount:      coin.NewCoinp(40, 0, "IOV"),
			},
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			bucket := NewBucket()
			ctrl := NewController(bucket)
			auth := &locktest.Auth{Signer: tc.signer}
			h := NewSendHandler(auth, ctrl)

			wallet, err := WalletWith(source.Address(), tc.initial...)
			assert.Nil(t, err)
			assert.Nil(t, bucket.Save(db, wallet))

			ctx := context.Background()
			tx := &locktest.Tx{Msg: tc.msg}

			cres, err := h.Check(ctx, db, tx)
			if tc.wantErr != nil && errors.ErrAmount.Is(tc.wantErr) {
				// balance is not checked until delivery
				assert.Nil(t, err)
			} else if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("unexpected check error: %+v", err)
				}
			} else {
				assert.Nil(t, err)
				assert.Equal(t, sendTxCost, cres.GasAllocated)
			}

			_, err = h.Deliver(ctx, db, tx)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("unexpected deliver error: %+v", err)
				}
				return
			}
			assert.Nil(t, err)

			got, err := ctrl.Balance(db, tc.msg.GetDestination())
			assert.Nil(t, err)
			assert.Equal(t, coin.Coins{tc.msg.GetAmount()}, got)
		})
	}
}

func TestSendHandlerBrokenTx(t *testing.T) {
	db := store.MemStore()
	h := NewSendHandler(&locktest.Auth{}, NewController(NewBucket()))

	// a message of the wrong type must not be processed
	tx := &locktest.Tx{Msg: &locktest.Msg{RoutePath: "test/alien"}}
	if _, err := h.Check(context.Background(), db, tx); !errors.ErrType.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	if _, err := h.Deliver(context.Background(), db, tx); !errors.ErrType.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestRegisterQuery(t *testing.T) {
	qr := tokenlock.NewQueryRouter()
	RegisterQuery(qr)
	if qr.Handler("/wallets") == nil {
		t.Fatal("wallets bucket not registered")
	}
}
