package epoch

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/core/helpers"
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// ProcessSlashings implements process_slashings: every validator whose
// withdrawable_epoch falls exactly half the slashings vector past the
// current epoch pays a penalty proportional to the total slashed balance
// over that window times PROPORTIONAL_SLASHING_MULTIPLIER_BELLATRIX, with
// that adjusted total capped at the total active balance. The
// division order (increment first, multiply, then increment back) is
// required to avoid overflowing a Gwei total-active-balance product.
func ProcessSlashings(st *state.BeaconState) error {
	cfg := params.BeaconConfig()
	currentEpoch := st.CurrentEpoch()
	totalActiveBalance := helpers.TotalActiveBalance(st.Validators, currentEpoch)

	var totalSlashings uint64
	for _, s := range st.Slashings {
		totalSlashings += uint64(s)
	}
	adjustedTotal := totalSlashings * cfg.ProportionalSlashingMultiplierBellatrix
	if adjustedTotal > totalActiveBalance {
		adjustedTotal = totalActiveBalance
	}

	increment := cfg.EffectiveBalanceIncrement
	half := cfg.EpochsPerSlashingsVector / 2
	for i, v := range st.Validators {
		if !v.Slashed {
			continue
		}
		if uint64(currentEpoch)+half != uint64(v.WithdrawableEpoch) {
			continue
		}
		penaltyNumerator := uint64(v.EffectiveBalance) / increment * adjustedTotal
		penalty := penaltyNumerator / totalActiveBalance * increment
		st.DecreaseBalance(primitives.ValidatorIndex(i), state.Gwei(penalty))
	}
	return nil
}
