package timelock

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/tokenlock"
	"github.com/iov-one/tokenlock/coin"
	"github.com/iov-one/tokenlock/locktest"
	"github.com/iov-one/tokenlock/locktest/assert"
	"github.com/iov-one/tokenlock/store"
	"github.com/iov-one/tokenlock/x/cash"
)

func TestGenesisInitializer(t *testing.T) {
	beneficiary := locktest.RandomAddr(t)

	genesis := `
	{
		"timelock": [
			{
				"beneficiary": "` + beneficiary.String() + `",
				"release_time": 1888888888,
				"memo": "founders grant",
				"amount": [{"whole": 25, "ticker": "IOV"}]
			}
		]
	}
	`
	var opts tokenlock.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	ctrl := cash.NewController(cash.NewBucket())
	ini := Initializer{Minter: ctrl}
	assert.Nil(t, ini.FromGenesis(opts, db))

	var lock TokenLock
	assert.Nil(t, NewBucket().One(db, locktest.SequenceID(1), &lock))
	assert.Equal(t, beneficiary, lock.Beneficiary)
	assert.Equal(t, tokenlock.UnixTime(1888888888), lock.ReleaseTime)
	assert.Equal(t, "founders grant", lock.Memo)

	funds, err := ctrl.Balance(db, lock.Address)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(25, 0, "IOV")}, funds)
}
