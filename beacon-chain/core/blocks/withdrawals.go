package blocks

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// ErrInvalidWithdrawals marks a mismatch between a payload's declared
// withdrawals and the sweep get_expected_withdrawals would have produced.
var ErrInvalidWithdrawals = errors.New("blocks: invalid withdrawals")

// hasEth1WithdrawalCredentials reports whether a validator's withdrawal
// credentials begin with the eth1 execution prefix.
func hasEth1WithdrawalCredentials(v *state.Validator) bool {
	cfg := params.BeaconConfig()
	return v.WithdrawalCredentials[0] == cfg.ETH1AddressWithdrawalPrefixByte
}

func isFullyWithdrawableValidator(v *state.Validator, balance state.Gwei, epoch primitives.Epoch) bool {
	return hasEth1WithdrawalCredentials(v) && v.WithdrawableEpoch <= epoch && balance > 0
}

func isPartiallyWithdrawableValidator(v *state.Validator, balance state.Gwei) bool {
	cfg := params.BeaconConfig()
	hasMaxEffectiveBalance := v.EffectiveBalance == state.Gwei(cfg.MaxEffectiveBalance)
	hasExcessBalance := balance > state.Gwei(cfg.MaxEffectiveBalance)
	return hasEth1WithdrawalCredentials(v) && hasMaxEffectiveBalance && hasExcessBalance
}

// GetExpectedWithdrawals sweeps at most MAX_VALIDATORS_PER_WITHDRAWALS_SWEEP
// validators starting at next_withdrawal_validator_index, collecting a
// withdrawal for each fully- or partially-withdrawable validator found,
// capped at MAX_WITHDRAWALS_PER_PAYLOAD.
func GetExpectedWithdrawals(st *state.BeaconState) []*state.Withdrawal {
	cfg := params.BeaconConfig()
	epoch := st.CurrentEpoch()
	withdrawalIndex := st.NextWithdrawalIndex
	validatorIndex := st.NextWithdrawalValidatorIndex

	withdrawals := make([]*state.Withdrawal, 0, cfg.MaxWithdrawalsPerPayload)
	n := primitives.ValidatorIndex(len(st.Validators))
	if n == 0 {
		return withdrawals
	}

	bound := n
	if cfg.MaxValidatorsPerWithdrawalsSweep < uint64(n) {
		bound = primitives.ValidatorIndex(cfg.MaxValidatorsPerWithdrawalsSweep)
	}

	for i := primitives.ValidatorIndex(0); i < bound && uint64(len(withdrawals)) < cfg.MaxWithdrawalsPerPayload; i++ {
		idx := (validatorIndex + i) % n
		v := st.Validators[idx]
		balance := st.Balances[idx]

		switch {
		case isFullyWithdrawableValidator(v, balance, epoch):
			withdrawals = append(withdrawals, &state.Withdrawal{
				Index:          withdrawalIndex,
				ValidatorIndex: idx,
				Address:        common.BytesToAddress(v.WithdrawalCredentials[12:]),
				Amount:         balance,
			})
			withdrawalIndex++
		case isPartiallyWithdrawableValidator(v, balance):
			withdrawals = append(withdrawals, &state.Withdrawal{
				Index:          withdrawalIndex,
				ValidatorIndex: idx,
				Address:        common.BytesToAddress(v.WithdrawalCredentials[12:]),
				Amount:         balance - state.Gwei(cfg.MaxEffectiveBalance),
			})
			withdrawalIndex++
		}
	}
	return withdrawals
}

// ProcessWithdrawals validates that payload.Withdrawals matches the
// expected sweep exactly, debits each validator's balance, and advances
// the sweep cursor: to one past the last withdrawn validator when the
// payload holds MAX_WITHDRAWALS_PER_PAYLOAD withdrawals, otherwise by
// MAX_VALIDATORS_PER_WITHDRAWALS_SWEEP, modulo the registry size.
func ProcessWithdrawals(st *state.BeaconState, payload *state.ExecutionPayload) error {
	cfg := params.BeaconConfig()
	expected := GetExpectedWithdrawals(st)

	if len(payload.Withdrawals) != len(expected) {
		return errors.Wrap(ErrInvalidWithdrawals, "withdrawal count mismatch")
	}
	for i, w := range expected {
		got := payload.Withdrawals[i]
		if got.Index != w.Index || got.ValidatorIndex != w.ValidatorIndex ||
			got.Address != w.Address || got.Amount != w.Amount {
			return errors.Wrap(ErrInvalidWithdrawals, "withdrawal does not match expected sweep")
		}
	}

	for _, w := range expected {
		st.DecreaseBalance(w.ValidatorIndex, w.Amount)
	}

	if len(expected) > 0 {
		st.NextWithdrawalIndex = expected[len(expected)-1].Index + 1
	}

	n := primitives.ValidatorIndex(len(st.Validators))
	if n == 0 {
		return nil
	}
	if uint64(len(expected)) == cfg.MaxWithdrawalsPerPayload {
		last := expected[len(expected)-1]
		st.NextWithdrawalValidatorIndex = (last.ValidatorIndex + 1) % n
	} else {
		sweep := primitives.ValidatorIndex(cfg.MaxValidatorsPerWithdrawalsSweep % uint64(n))
		st.NextWithdrawalValidatorIndex = (st.NextWithdrawalValidatorIndex + sweep) % n
	}
	return nil
}
