package validators

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// SlashValidator marks validators[slashedIndex] slashed, applies the
// immediate minimum penalty (effective_balance /
// MIN_SLASHING_PENALTY_QUOTIENT), initiates its exit,
// and splits the whistleblower reward between the reporting validator
// (whistleblowerIndex) and the block proposer. whistleblowerIndex ==
// proposerIndex when the protocol offers no distinct reporter, which pays
// the full reward to the proposer.
func SlashValidator(st *state.BeaconState, slashedIndex, whistleblowerIndex, proposerIndex primitives.ValidatorIndex) {
	cfg := params.BeaconConfig()
	currentEpoch := st.CurrentEpoch()

	InitiateValidatorExit(st, slashedIndex)

	v := st.Validators[slashedIndex]
	v.Slashed = true
	v.WithdrawableEpoch = maxEpoch(v.WithdrawableEpoch,
		currentEpoch+primitives.Epoch(cfg.EpochsPerSlashingsVector))

	st.SetSlashingAtEpoch(currentEpoch, st.SlashingAtEpoch(currentEpoch)+v.EffectiveBalance)

	penalty := uint64(v.EffectiveBalance) / cfg.MinSlashingPenaltyQuotient
	st.DecreaseBalance(slashedIndex, state.Gwei(penalty))

	whistleblowerReward := uint64(v.EffectiveBalance) / cfg.WhistleblowerRewardQuotient
	proposerReward := whistleblowerReward * cfg.ProposerWeight / cfg.WeightDenominator
	st.IncreaseBalance(proposerIndex, state.Gwei(proposerReward))
	st.IncreaseBalance(whistleblowerIndex, state.Gwei(whistleblowerReward-proposerReward))
}

func maxEpoch(a, b primitives.Epoch) primitives.Epoch {
	if a > b {
		return a
	}
	return b
}
