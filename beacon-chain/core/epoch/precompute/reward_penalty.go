package precompute

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

func flagWeights(cfg *params.BeaconChainConfig) map[uint8]uint64 {
	return map[uint8]uint64{
		cfg.TimelySourceFlagIndex: cfg.TimelySourceWeight,
		cfg.TimelyTargetFlagIndex: cfg.TimelyTargetWeight,
		cfg.TimelyHeadFlagIndex:   cfg.TimelyHeadWeight,
	}
}

func contains(set []primitives.ValidatorIndex, target primitives.ValidatorIndex) bool {
	for _, idx := range set {
		if idx == target {
			return true
		}
	}
	return false
}

// AttestationsDelta implements get_flag_index_deltas summed across all
// three participation flags: rewards[i]/penalties[i] are indexed by
// validator index and sized to the full registry.
func AttestationsDelta(st *state.BeaconState) (rewards, penalties []state.Gwei, err error) {
	cfg := params.BeaconConfig()
	n := len(st.Validators)
	rewards = make([]state.Gwei, n)
	penalties = make([]state.Gwei, n)

	previous := st.PreviousEpoch()
	totalActiveBalance := helpers.TotalActiveBalance(st.Validators, previous)
	activeIncrements := totalActiveBalance / cfg.EffectiveBalanceIncrement
	eligible := EligibleValidatorIndices(st)
	leaking := IsInInactivityLeak(st)

	for flagIndex, weight := range flagWeights(cfg) {
		participating := UnslashedParticipatingIndices(st, flagIndex)
		participatingBalance := helpers.TotalBalance(st.Validators, participating)
		participatingIncrements := participatingBalance / cfg.EffectiveBalanceIncrement

		for _, idx := range eligible {
			baseReward := helpers.BaseReward(st.Validators[idx], totalActiveBalance)
			switch {
			case contains(participating, idx):
				if !leaking {
					rewards[idx] += state.Gwei(baseReward * weight * participatingIncrements / (activeIncrements * cfg.WeightDenominator))
				}
			case flagIndex != cfg.TimelyHeadFlagIndex:
				penalties[idx] += state.Gwei(baseReward * weight / cfg.WeightDenominator)
			}
		}
	}
	return rewards, penalties, nil
}

// InactivityPenaltyDeltas implements get_inactivity_penalty_deltas: every
// eligible validator missing TIMELY_TARGET pays a penalty proportional to
// its inactivity score, independent of the flag-index rewards above.
func InactivityPenaltyDeltas(st *state.BeaconState) []state.Gwei {
	cfg := params.BeaconConfig()
	penalties := make([]state.Gwei, len(st.Validators))

	matchingTarget := UnslashedParticipatingIndices(st, cfg.TimelyTargetFlagIndex)
	for _, idx := range EligibleValidatorIndices(st) {
		if contains(matchingTarget, idx) {
			continue
		}
		v := st.Validators[idx]
		penaltyNumerator := uint64(v.EffectiveBalance) * st.InactivityScores[idx]
		penaltyDenominator := cfg.InactivityScoreBias * cfg.InactivityPenaltyQuotientAltair
		penalties[idx] = state.Gwei(penaltyNumerator / penaltyDenominator)
	}
	return penalties
}
