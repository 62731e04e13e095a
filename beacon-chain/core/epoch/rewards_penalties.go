package epoch

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/core/epoch/precompute"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// ProcessRewardsAndPenalties implements process_rewards_and_penalties: a
// no-op at genesis (there is no previous epoch of attestations to
// reward), otherwise it sums the three flag-index deltas and the
// inactivity-leak penalty, then applies every increase before any
// decrease so balances never see a transient negative.
func ProcessRewardsAndPenalties(st *state.BeaconState) error {
	cfg := params.BeaconConfig()
	if st.CurrentEpoch() == primitives.Epoch(cfg.GenesisEpoch) {
		return nil
	}

	rewards, penalties, err := precompute.AttestationsDelta(st)
	if err != nil {
		return err
	}
	inactivityPenalties := precompute.InactivityPenaltyDeltas(st)

	for i := range st.Validators {
		st.IncreaseBalance(primitives.ValidatorIndex(i), rewards[i])
	}
	for i := range st.Validators {
		st.DecreaseBalance(primitives.ValidatorIndex(i), penalties[i])
		st.DecreaseBalance(primitives.ValidatorIndex(i), inactivityPenalties[i])
	}
	return nil
}
