// Package validators implements the validator-lifecycle mutations shared
// by the voluntary-exit operation processor and the epoch-boundary
// registry update: initiating an exit (assigning an exit queue slot and
// withdrawable epoch) and slashing (an immediate penalty of
// effective_balance / MIN_SLASHING_PENALTY_QUOTIENT, plus a reward of
// effective_balance / WHISTLEBLOWER_REWARD_QUOTIENT split between the
// whistleblower and the proposer).
package validators

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/time"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// InitiateValidatorExit assigns validators[index] an exit_epoch past the
// current activation-exit-churn-limited queue and a withdrawable_epoch
// MIN_VALIDATOR_WITHDRAWABILITY_DELAY after it. A no-op if the validator
// already has an exit_epoch set.
func InitiateValidatorExit(st *state.BeaconState, index primitives.ValidatorIndex) {
	cfg := params.BeaconConfig()
	v := st.Validators[index]
	if v.ExitEpoch != primitives.Epoch(cfg.FarFutureEpoch) {
		return
	}

	currentEpoch := st.CurrentEpoch()
	exitEpochs := make([]primitives.Epoch, 0, len(st.Validators))
	for _, other := range st.Validators {
		if other.ExitEpoch != primitives.Epoch(cfg.FarFutureEpoch) {
			exitEpochs = append(exitEpochs, other.ExitEpoch)
		}
	}

	exitQueueEpoch := time.ComputeActivationExitEpoch(currentEpoch)
	for _, e := range exitEpochs {
		if e >= exitQueueEpoch {
			exitQueueEpoch = e
		}
	}

	exitQueueChurn := uint64(0)
	for _, e := range exitEpochs {
		if e == exitQueueEpoch {
			exitQueueChurn++
		}
	}

	activeCount := uint64(len(helpers.ActiveValidatorIndices(st.Validators, currentEpoch)))
	if exitQueueChurn >= helpers.ValidatorChurnLimit(activeCount) {
		exitQueueEpoch++
	}

	v.ExitEpoch = exitQueueEpoch
	v.WithdrawableEpoch = v.ExitEpoch + primitives.Epoch(cfg.MinValidatorWithdrawabilityDelay)
}
