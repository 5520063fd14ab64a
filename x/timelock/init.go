package timelock

import (
	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/coin"
	"github.com/iov-one/tokenlock/errors"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct {
	Minter CoinMinter
}

// CoinMinter is the subset of the cash controller needed to fund the
// genesis locks.
type CoinMinter interface {
	CoinMint(tokenlock.KVStore, tokenlock.Address, coin.Coin) error
}

var _ tokenlock.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial lock info from genesis and save it in
// the database. Coins are minted into the lock accounts, no existing
// wallet is charged.
func (i *Initializer) FromGenesis(opts tokenlock.Options, db tokenlock.KVStore) error {
	var locks []struct {
		Beneficiary tokenlock.Address  `json:"beneficiary"`
		ReleaseTime tokenlock.UnixTime `json:"release_time"`
		Memo        string             `json:"memo"`
		Amount      []*coin.Coin       `json:"amount"`
	}
	if err := opts.ReadOptions("timelock", &locks); err != nil {
		return err
	}

	bucket := NewBucket()
	for j, l := range locks {
		key, err := lockSeq.NextVal(db)
		if err != nil {
			return errors.Wrap(err, "cannot acquire key")
		}
		lock := TokenLock{
			Beneficiary: l.Beneficiary,
			ReleaseTime: l.ReleaseTime,
			Memo:        l.Memo,
			Address:     Condition(key).Address(),
		}
		if err := bucket.Put(db, key, &lock); err != nil {
			return errors.Wrapf(err, "lock #%d", j)
		}
		for _, c := range l.Amount {
			if err := i.Minter.CoinMint(db, lock.Address, *c); err != nil {
				return errors.Wrapf(err, "lock #%d: cannot issue coins", j)
			}
		}
	}
	return nil
}
