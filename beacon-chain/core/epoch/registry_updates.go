package epoch

import (
	"sort"

	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/time"
	"github.com/ethsentry/beacon-transition/beacon-chain/core/validators"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// ProcessRegistryUpdates implements process_registry_updates: queues
// newly-eligible validators for activation, ejects any active validator
// whose effective balance is at or below EJECTION_BALANCE, then activates as many eligibility-ordered
// queued validators as the activation churn limit allows.
func ProcessRegistryUpdates(st *state.BeaconState) error {
	cfg := params.BeaconConfig()
	currentEpoch := st.CurrentEpoch()

	for _, v := range st.Validators {
		if helpers.IsEligibleForActivationQueue(v) {
			v.ActivationEligibilityEpoch = currentEpoch + 1
		}
	}
	for i, v := range st.Validators {
		if helpers.IsActiveValidator(v, currentEpoch) && v.EffectiveBalance <= state.Gwei(cfg.EjectionBalance) {
			validators.InitiateValidatorExit(st, primitives.ValidatorIndex(i))
			log.Infof("Validator at index %d ejected", i)
		}
	}

	finalizedEpoch := st.FinalizedCheckpoint.Epoch
	queue := make([]primitives.ValidatorIndex, 0)
	for i, v := range st.Validators {
		if helpers.IsEligibleForActivation(v, finalizedEpoch) {
			queue = append(queue, primitives.ValidatorIndex(i))
		}
	}
	sort.Slice(queue, func(a, b int) bool {
		va, vb := st.Validators[queue[a]], st.Validators[queue[b]]
		if va.ActivationEligibilityEpoch != vb.ActivationEligibilityEpoch {
			return va.ActivationEligibilityEpoch < vb.ActivationEligibilityEpoch
		}
		return queue[a] < queue[b]
	})

	activeCount := uint64(len(helpers.ActiveValidatorIndices(st.Validators, currentEpoch)))
	churnLimit := helpers.ValidatorActivationChurnLimit(activeCount)
	if uint64(len(queue)) > churnLimit {
		queue = queue[:churnLimit]
	}
	for _, idx := range queue {
		st.Validators[idx].ActivationEpoch = time.ComputeActivationExitEpoch(currentEpoch)
	}
	return nil
}
