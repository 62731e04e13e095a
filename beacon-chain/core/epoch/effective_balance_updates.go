package epoch

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
)

// ProcessEffectiveBalanceUpdates implements process_effective_balance_updates:
// a hysteresis band keeps effective_balance from chasing every small
// balance fluctuation, only rounding down EFFECTIVE_BALANCE_INCREMENT
// steps once the actual balance has moved clear of the band's edge.
func ProcessEffectiveBalanceUpdates(st *state.BeaconState) error {
	cfg := params.BeaconConfig()
	increment := cfg.EffectiveBalanceIncrement
	hysteresisIncrement := increment / cfg.HysteresisQuotient
	downward := hysteresisIncrement * cfg.HysteresisDownwardMultiplier
	upward := hysteresisIncrement * cfg.HysteresisUpwardMultiplier

	for i, v := range st.Validators {
		balance := uint64(st.Balances[i])
		effective := uint64(v.EffectiveBalance)

		if balance+downward < effective || effective+upward < balance {
			newEffective := balance - balance%increment
			if newEffective > cfg.MaxEffectiveBalance {
				newEffective = cfg.MaxEffectiveBalance
			}
			v.EffectiveBalance = state.Gwei(newEffective)
		}
	}
	return nil
}
