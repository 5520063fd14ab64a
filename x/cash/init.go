package cash

import (
	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/coin"
	"github.com/iov-one/tokenlock/errors"
)

// GenesisAccount is used to parse the json from genesis file
type GenesisAccount struct {
	Address tokenlock.Address `json:"address"`
	Coins   coin.Coins        `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ tokenlock.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts tokenlock.Options, db tokenlock.KVStore) error {
	accounts := []GenesisAccount{}
	if err := opts.ReadOptions("cash", &accounts); err != nil {
		return err
	}
	bucket := NewBucket()
	for i, acc := range accounts {
		if err := acc.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		wallet, err := WalletWith(acc.Address, acc.Coins...)
		if err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		if err := bucket.Save(db, wallet); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	return nil
}
