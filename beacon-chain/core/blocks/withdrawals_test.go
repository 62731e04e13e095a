package blocks

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
)

func TestGetExpectedWithdrawals_SkipsNonEth1Validators(t *testing.T) {
	s := newBlocksTestState(t, 3)
	cfg := params.BeaconConfig()
	for _, v := range s.Validators {
		v.WithdrawalCredentials[0] = 0x00
	}
	s.Validators[1].WithdrawalCredentials[0] = cfg.ETH1AddressWithdrawalPrefixByte
	s.Validators[1].EffectiveBalance = state.Gwei(cfg.MaxEffectiveBalance)
	s.Balances[1] = state.Gwei(cfg.MaxEffectiveBalance) + 1_000_000_000

	withdrawals := GetExpectedWithdrawals(s)
	require.Len(t, withdrawals, 1)
	require.Equal(t, uint64(1), uint64(withdrawals[0].ValidatorIndex))
	require.Equal(t, state.Gwei(1_000_000_000), withdrawals[0].Amount)
}

func TestGetExpectedWithdrawals_FullWithdrawalDrainsEntireBalance(t *testing.T) {
	s := newBlocksTestState(t, 2)
	cfg := params.BeaconConfig()
	for _, v := range s.Validators {
		v.WithdrawalCredentials[0] = 0x00
	}
	s.Validators[0].WithdrawalCredentials[0] = cfg.ETH1AddressWithdrawalPrefixByte
	s.Validators[0].WithdrawableEpoch = 0
	s.Balances[0] = 5_000_000_000

	withdrawals := GetExpectedWithdrawals(s)
	require.Len(t, withdrawals, 1)
	require.Equal(t, state.Gwei(5_000_000_000), withdrawals[0].Amount)
}

func TestProcessWithdrawals_RejectsMismatch(t *testing.T) {
	s := newBlocksTestState(t, 2)
	cfg := params.BeaconConfig()
	s.Validators[0].WithdrawalCredentials[0] = cfg.ETH1AddressWithdrawalPrefixByte
	s.Validators[0].WithdrawableEpoch = 0

	payload := &state.ExecutionPayload{
		Withdrawals: []*state.Withdrawal{
			{Index: 0, ValidatorIndex: 0, Address: common.Address{}, Amount: 999},
		},
	}
	err := ProcessWithdrawals(s, payload)
	require.ErrorIs(t, err, ErrInvalidWithdrawals)
}

func TestProcessWithdrawals_AppliesExpectedAndAdvancesCursor(t *testing.T) {
	s := newBlocksTestState(t, 2)
	cfg := params.BeaconConfig()
	for _, v := range s.Validators {
		v.WithdrawalCredentials[0] = 0x00
	}
	s.Validators[0].WithdrawalCredentials[0] = cfg.ETH1AddressWithdrawalPrefixByte
	s.Validators[0].WithdrawableEpoch = 0

	expected := GetExpectedWithdrawals(s)
	require.Len(t, expected, 1)

	err := ProcessWithdrawals(s, &state.ExecutionPayload{Withdrawals: expected})
	require.NoError(t, err)
	require.Equal(t, state.Gwei(0), s.Balances[0])
	require.Equal(t, expected[0].Index+1, s.NextWithdrawalIndex)
}
