package epoch

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/core/epoch/precompute"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// ProcessInactivityUpdates implements process_inactivity_updates: a
// no-op at genesis, then for every previous-epoch-eligible validator,
// relax its inactivity score toward zero if it timely-targeted, otherwise
// grow it, with an additional recovery step once the chain is no longer
// in an inactivity leak.
func ProcessInactivityUpdates(st *state.BeaconState) error {
	cfg := params.BeaconConfig()
	if st.CurrentEpoch() == primitives.Epoch(cfg.GenesisEpoch) {
		return nil
	}

	matchingTarget := make(map[primitives.ValidatorIndex]bool)
	for _, idx := range precompute.UnslashedParticipatingIndices(st, cfg.TimelyTargetFlagIndex) {
		matchingTarget[idx] = true
	}
	leaking := precompute.IsInInactivityLeak(st)

	for _, idx := range precompute.EligibleValidatorIndices(st) {
		score := st.InactivityScores[idx]
		if matchingTarget[idx] {
			if score > 0 {
				score--
			}
		} else {
			score += cfg.InactivityScoreBias
		}
		if !leaking {
			if score > cfg.InactivityScoreRecoveryRate {
				score -= cfg.InactivityScoreRecoveryRate
			} else {
				score = 0
			}
		}
		st.InactivityScores[idx] = score
	}
	return nil
}
