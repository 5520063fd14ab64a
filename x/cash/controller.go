package cash

import (
	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/coin"
	"github.com/iov-one/tokenlock/errors"
)

// Controller is the functionality needed by handlers that move tokens
// around. BaseController should work plenty fine, but you can add other
// logic if so desired
type Controller interface {
	CoinMover
	CoinMinter

	// Balance returns the amount of funds stored under given account
	// address. A zero balance is reported with ErrEmpty.
	Balance(tokenlock.KVStore, tokenlock.Address) (coin.Coins, error)
}

// CoinMover is the interface that must be fulfilled to move coins
// between existing accounts.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to
	// the destination account. This operation is atomic.
	MoveCoins(store tokenlock.KVStore, src tokenlock.Address, dest tokenlock.Address, amount coin.Coin) error
}

// CoinMinter is the interface to create new coins out of thin air.
type CoinMinter interface {
	// CoinMint increase the amount of funds on given account by a
	// specified amount.
	CoinMint(tokenlock.KVStore, tokenlock.Address, coin.Coin) error
}

// BaseController implements Controller interface, using WalletBucket as
// the storage engine. Wallet must be initialized before use.
type BaseController struct {
	bucket WalletBucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket WalletBucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of funds stored under given account address.
func (c BaseController) Balance(store tokenlock.KVStore, src tokenlock.Address) (coin.Coins, error) {
	state, err := c.bucket.Get(store, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get account state")
	}
	if state == nil {
		return nil, errors.Wrapf(errors.ErrEmpty, "account %s", src)
	}
	return AsCoins(state), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(store tokenlock.KVStore,
	src tokenlock.Address, dest tokenlock.Address, amount coin.Coin) error {

	if amount.IsZero() {
		return nil
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %#v", &amount)
	}

	// load sender, balance, ensure funds
	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if !AsCoins(sender).Contains(amount) {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds %s", amount)
	}

	// load/create recipient
	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}

	err = AsWallet(sender).Subtract(amount)
	if err != nil {
		return err
	}
	err = AsWallet(recipient).Add(amount)
	if err != nil {
		return err
	}

	// save them and return
	err = c.bucket.Save(store, sender)
	if err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// CoinMint attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) CoinMint(store tokenlock.KVStore,
	dest tokenlock.Address, amount coin.Coin) error {

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	err = AsWallet(recipient).Add(amount)
	if err != nil {
		return err
	}

	return c.bucket.Save(store, recipient)
}
