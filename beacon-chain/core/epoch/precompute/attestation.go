// Package precompute derives the per-epoch aggregate balances the reward
// and penalty formulas need: the total active balance once per pass, and
// each flag's participating balance once per flag index rather than once
// per validator.
package precompute

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// FinalityDelay returns previous_epoch - finalized_checkpoint.epoch.
func FinalityDelay(st *state.BeaconState) uint64 {
	previous := st.PreviousEpoch()
	return uint64(previous) - uint64(st.FinalizedCheckpoint.Epoch)
}

// IsInInactivityLeak reports whether the chain has failed to finalize for
// longer than MIN_EPOCHS_TO_INACTIVITY_PENALTY, activating the inactivity
// leak's extra penalty.
func IsInInactivityLeak(st *state.BeaconState) bool {
	return FinalityDelay(st) > params.BeaconConfig().MinEpochsToInactivityPenalty
}

// EligibleValidatorIndices returns every index active in the previous
// epoch, plus every slashed index not yet past its withdrawable epoch.
func EligibleValidatorIndices(st *state.BeaconState) []primitives.ValidatorIndex {
	previous := st.PreviousEpoch()
	out := make([]primitives.ValidatorIndex, 0, len(st.Validators))
	for i, v := range st.Validators {
		slashedButNotWithdrawable := v.Slashed && previous+1 < v.WithdrawableEpoch
		if helpers.IsActiveValidator(v, previous) || slashedButNotWithdrawable {
			out = append(out, primitives.ValidatorIndex(i))
		}
	}
	return out
}

// UnslashedParticipatingIndices returns every previous-epoch-eligible,
// unslashed index whose previous_epoch_participation carries flagIndex.
func UnslashedParticipatingIndices(st *state.BeaconState, flagIndex uint8) []primitives.ValidatorIndex {
	previous := st.PreviousEpoch()
	out := make([]primitives.ValidatorIndex, 0, len(st.Validators))
	for i, v := range st.Validators {
		if v.Slashed || !helpers.IsActiveValidator(v, previous) {
			continue
		}
		if helpers.HasFlag(st.PreviousEpochParticipation[i], flagIndex) {
			out = append(out, primitives.ValidatorIndex(i))
		}
	}
	return out
}
