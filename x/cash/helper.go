package cash

import (
	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/coin"
)

// MoveCoins moves the given amounts from sender to recipient.
// It fails on the first coin that cannot be moved, leaving earlier
// moves in place. Run inside a cache-wrap to make this atomic.
func MoveCoins(store tokenlock.KVStore, bank CoinMover,
	sender tokenlock.Address, recipient tokenlock.Address, amounts []*coin.Coin) error {

	for _, c := range amounts {
		err := bank.MoveCoins(store, sender, recipient, *c)
		if err != nil {
			return err
		}
	}
	return nil
}
