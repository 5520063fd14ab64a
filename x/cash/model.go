package cash

import (
	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/coin"
	"github.com/iov-one/tokenlock/errors"
	"github.com/iov-one/tokenlock/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

//---- Set

var _ orm.CloneableData = (*Set)(nil)

// Validate requires that all coins are in alphabetical order
func (s *Set) Validate() error {
	return coin.Coins(s.GetCoins()).Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() orm.CloneableData {
	return &Set{
		Coins: coin.Coins(s.GetCoins()).Clone(),
	}
}

//--- Wallet (Set object, wallet + key)

// Wallet is the actual object that we want to pass around
// in our code. It contains a set of coins, as well as the
// address. It is connected to the Bucket to easily manipulate
// state.
//
// Wallet is a type-safe wrapper around orm.SimpleObj
type Wallet struct {
	key   []byte
	value *Set
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates an empty wallet with this address
func NewWallet(key tokenlock.Address) *Wallet {
	return &Wallet{
		key:   key,
		value: new(Set),
	}
}

// WalletWith creates an wallet with a balance
func WalletWith(key tokenlock.Address, coins ...*coin.Coin) (*Wallet, error) {
	w := NewWallet(key)
	if err := w.Concat(coins); err != nil {
		return nil, err
	}
	return w, nil
}

// Value gets the value stored in the object
func (w Wallet) Value() tokenlock.Persistent {
	return w.value
}

// Key returns the key to store the object under
func (w Wallet) Key() []byte {
	return w.key
}

// Validate makes sure the fields aren't empty.
// And delegates to the value validator if present
func (w Wallet) Validate() error {
	if err := tokenlock.Address(w.key).Validate(); err != nil {
		return err
	}
	return w.value.Validate()
}

// SetKey may be used to update a simple obj key
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: w.value.Copy().(*Set),
	}
	// only copy key if non-nil
	if len(w.key) > 0 {
		res.key = append([]byte(nil), w.key...)
	}
	return res
}

// Coins returns the coins stored in the wallet
func (w Wallet) Coins() coin.Coins {
	return coin.Coins(w.value.GetCoins())
}

// Add modifies the wallet to add Coin c
func (w *Wallet) Add(c coin.Coin) error {
	cs, err := w.Coins().Add(c)
	if err != nil {
		return err
	}
	w.value.Coins = cs
	return nil
}

// Subtract modifies the wallet to remove Coin c
func (w *Wallet) Subtract(c coin.Coin) error {
	return w.Add(c.Negative())
}

// Concat combines the coins to make sure they are sorted
// and rounded off, with no duplicates or 0 values.
func (w *Wallet) Concat(coins coin.Coins) error {
	joint, err := w.Coins().Combine(coins)
	if err != nil {
		return err
	}
	w.value.Coins = joint
	return nil
}

//--- cash.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// WalletBucket is what we expect to be able to do with wallets.
// The object it returns must support AsSet (only checked runtime :()
type WalletBucket interface {
	GetOrCreate(db tokenlock.KVStore, key tokenlock.Address) (orm.Object, error)
	Get(db tokenlock.ReadOnlyKVStore, key []byte) (orm.Object, error)
	Save(db tokenlock.KVStore, obj orm.Object) error
}

var _ WalletBucket = Bucket{}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

// GetOrCreate will return the object if found, or create one
// if not.
func (b Bucket) GetOrCreate(db tokenlock.KVStore, key tokenlock.Address) (orm.Object, error) {
	obj, err := b.Get(db, key)
	if err == nil && obj == nil {
		obj = NewWallet(key)
	}
	return obj, err
}

// AsCoins will safely type-cast any value from WalletBucket to the
// coins inside
func AsCoins(obj orm.Object) coin.Coins {
	if obj == nil {
		return nil
	}
	wallet, ok := obj.(*Wallet)
	if !ok {
		panic(errors.Wrapf(errors.ErrType, "%T is not a wallet", obj))
	}
	return wallet.Coins()
}

// AsWallet converts a generic object into a wallet, panics on
// a type mismatch
func AsWallet(obj orm.Object) *Wallet {
	if obj == nil {
		return nil
	}
	wallet, ok := obj.(*Wallet)
	if !ok {
		panic(errors.Wrapf(errors.ErrType, "%T is not a wallet", obj))
	}
	return wallet
}
