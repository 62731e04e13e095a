// Package helpers implements the committee and seed derivation engine,
// plus the small validator-predicate helpers the operation processors
// lean on throughout.
package helpers

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// IsActiveValidator reports whether v is active at epoch:
// activation_epoch <= epoch < exit_epoch.
func IsActiveValidator(v *state.Validator, epoch primitives.Epoch) bool {
	return v.ActivationEpoch <= epoch && epoch < v.ExitEpoch
}

// IsSlashableValidator reports whether v can still be slashed at epoch:
// not already slashed, and activation_epoch <= epoch < withdrawable_epoch.
func IsSlashableValidator(v *state.Validator, epoch primitives.Epoch) bool {
	return !v.Slashed && v.ActivationEpoch <= epoch && epoch < v.WithdrawableEpoch
}

// IsEligibleForActivationQueue reports whether v should have its
// activation_eligibility_epoch set this epoch.
func IsEligibleForActivationQueue(v *state.Validator) bool {
	cfg := params.BeaconConfig()
	return v.ActivationEligibilityEpoch == primitives.Epoch(cfg.FarFutureEpoch) &&
		v.EffectiveBalance == state.Gwei(cfg.MaxEffectiveBalance)
}

// IsEligibleForActivation reports whether v is queued and finalization has
// caught up to its eligibility epoch.
func IsEligibleForActivation(v *state.Validator, finalizedEpoch primitives.Epoch) bool {
	cfg := params.BeaconConfig()
	return v.ActivationEligibilityEpoch <= finalizedEpoch &&
		v.ActivationEpoch == primitives.Epoch(cfg.FarFutureEpoch)
}

// ActiveValidatorIndices returns every index i with IsActiveValidator(i, epoch).
func ActiveValidatorIndices(validators []*state.Validator, epoch primitives.Epoch) []primitives.ValidatorIndex {
	indices := make([]primitives.ValidatorIndex, 0, len(validators))
	for i, v := range validators {
		if IsActiveValidator(v, epoch) {
			indices = append(indices, primitives.ValidatorIndex(i))
		}
	}
	return indices
}

// TotalBalance sums effective balances of the given indices (floored at 1
// EFFECTIVE_BALANCE_INCREMENT to avoid a division by zero downstream,
// matching the reference spec's get_total_balance).
func TotalBalance(validators []*state.Validator, indices []primitives.ValidatorIndex) uint64 {
	var total uint64
	for _, idx := range indices {
		total += uint64(validators[idx].EffectiveBalance)
	}
	increment := params.BeaconConfig().EffectiveBalanceIncrement
	if total < increment {
		return increment
	}
	return total
}

// TotalActiveBalance sums TotalBalance over every validator active at epoch.
func TotalActiveBalance(validators []*state.Validator, epoch primitives.Epoch) uint64 {
	return TotalBalance(validators, ActiveValidatorIndices(validators, epoch))
}

// IsSortedAndUnique reports whether s is strictly ascending.
func IsSortedAndUnique(s []primitives.ValidatorIndex) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}
