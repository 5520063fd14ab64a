package cash

import (
	"strings"
	"testing"

	"github.com/iov-one/tokenlock/coin"
	"github.com/iov-one/tokenlock/errors"
	"github.com/iov-one/tokenlock/locktest"
	"github.com/iov-one/tokenlock/locktest/assert"
)

func TestSendMsgPath(t *testing.T) {
	assert.Equal(t, "cash/send", SendMsg{}.Path())
}

func TestSendMsgValidate(t *testing.T) {
	addr1 := locktest.NewCondition().Address()
	addr2 := locktest.NewCondition().Address()

	cases := map[string]struct {
		msg     *SendMsg
		wantErr *errors.Error
	}{
		"happy path": {
			msg: &SendMsg{
				Source:      addr1,
				Destination: addr2,
				Amount:      coin.NewCoinp(10, 0, "IOV"),
				Memo:        "birthday present",
			},
		},
		"missing amount": {
			msg: &SendMsg{
				Source:      addr1,
				Destination: addr2,
			},
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			msg: &SendMsg{
				Source:      addr1,
				Destination: addr2,
				Amount:      coin.NewCoinp(-10, 0, "IOV"),
			},
			wantErr: errors.ErrAmount,
		},
		"invalid ticker": {
			msg: &SendMsg{
				Source:      addr1,
				Destination: addr2,
				Amount:      coin.NewCoinp(10, 0, "eth2"),
			},
			wantErr: errors.ErrCurrency,
		},
		"missing source": {
			msg: &SendMsg{
				Destination: addr2,
				Amount:      coin.NewCoinp(10, 0, "IOV"),
			},
			wantErr: errors.ErrEmpty,
		},
		"missing destination": {
			msg: &SendMsg{
				Source: addr1,
				Amount: coin.NewCoinp(10, 0, "IOV"),
			},
			wantErr: errors.ErrEmpty,
		},
		"memo too long": {
			msg: &SendMsg{
				Source:      addr1,
				Destination: addr2,
				Amount:      coin.NewCoinp(10, 0, "IOV"),
				Memo:        strings.Repeat("x", maxMemoSize+1),
			},
			wantErr: errors.ErrInput,
		},
		"ref too long": {
			msg: &SendMsg{
				Source:      addr1,
				Destination: addr2,
				Amount:      coin.NewCoinp(10, 0, "IOV"),
				Ref:         []byte(strings.Repeat("x", maxRefSize+1)),
			},
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestDefaultSource(t *testing.T) {
	addr1 := locktest.NewCondition().Address()
	addr2 := locktest.NewCondition().Address()
	fallback := locktest.NewCondition().Address()

	// an already set source is preserved
	msg := &SendMsg{
		Source:      addr1,
		Destination: addr2,
		Amount:      coin.NewCoinp(10, 0, "IOV"),
	}
	assert.Equal(t, addr1, msg.DefaultSource(fallback).GetSource())

	// a missing source is filled in
	msg = &SendMsg{
		Destination: addr2,
		Amount:      coin.NewCoinp(10, 0, "IOV"),
	}
	assert.Equal(t, fallback, msg.DefaultSource(fallback).GetSource())
}
