package timelock

import (
	"strings"
	"testing"

	"github.com/iov-one/tokenlock/coin"
	"github.com/iov-one/tokenlock/errors"
	"github.com/iov-one/tokenlock/locktest"
	"github.com/iov-one/tokenlock/locktest/assert"
)

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, "timelock/create", CreateMsg{}.Path())
	assert.Equal(t, "timelock/release", ReleaseMsg{}.Path())
	assert.Equal(t, "timelock/update_beneficiary", UpdateBeneficiaryMsg{}.Path())
}

func TestCreateMsgValidate(t *testing.T) {
	source := locktest.NewCondition().Address()
	beneficiary := locktest.NewCondition().Address()

	cases := map[string]struct {
		msg     *CreateMsg
		wantErr *errors.Error
	}{
		"happy path": {
			msg: &CreateMsg{
				Source:      source,
				Beneficiary: beneficiary,
				Amount:      coin.Coins{coin.NewCoinp(25, 0, "IOV")},
				ReleaseTime: 1000,
				Memo:        "vesting grant",
			},
		},
		"source is optional": {
			msg: &CreateMsg{
				Beneficiary: beneficiary,
				Amount:      coin.Coins{coin.NewCoinp(25, 0, "IOV")},
				ReleaseTime: 1000,
			},
		},
		"missing beneficiary": {
			msg: &CreateMsg{
				Source:      source,
				Amount:      coin.Coins{coin.NewCoinp(25, 0, "IOV")},
				ReleaseTime: 1000,
			},
			wantErr: errors.ErrEmpty,
		},
		"missing release time": {
			msg: &CreateMsg{
				Source:      source,
				Beneficiary: beneficiary,
				Amount:      coin.Coins{coin.NewCoinp(25, 0, "IOV")},
			},
			wantErr: errors.ErrInput,
		},
		"missing amount": {
			msg: &CreateMsg{
				Source:      source,
				Beneficiary: beneficiary,
				ReleaseTime: 1000,
			},
			wantErr: errors.ErrAmount,
		},
		"non-positive amount": {
			msg: &CreateMsg{
				Source:      source,
				Beneficiary: beneficiary,
				Amount:      coin.Coins{coin.NewCoinp(-25, 0, "IOV")},
				ReleaseTime: 1000,
			},
			wantErr: errors.ErrAmount,
		},
		"memo too long": {
			msg: &CreateMsg{
				Source:      source,
				Beneficiary: beneficiary,
				Amount:      coin.Coins{coin.NewCoinp(25, 0, "IOV")},
				ReleaseTime: 1000,
				Memo:        strings.Repeat("x", maxMemoSize+1),
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

func TestReleaseMsgValidate(t *testing.T) {
	assert.Nil(t, (&ReleaseMsg{LockID: locktest.SequenceID(1)}).Validate())

	err := (&ReleaseMsg{}).Validate()
	if !errors.ErrEmpty.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	err = (&ReleaseMsg{LockID: []byte{1, 2, 3}}).Validate()
	if !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestUpdateBeneficiaryMsgValidate(t *testing.T) {
	beneficiary := locktest.NewCondition().Address()

	assert.Nil(t, (&UpdateBeneficiaryMsg{
		LockID:      locktest.SequenceID(1),
		Beneficiary: beneficiary,
	}).Validate())

	err := (&UpdateBeneficiaryMsg{Beneficiary: beneficiary}).Validate()
	if !errors.ErrEmpty.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}

	err = (&UpdateBeneficiaryMsg{LockID: locktest.SequenceID(1)}).Validate()
	if !errors.ErrEmpty.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}
