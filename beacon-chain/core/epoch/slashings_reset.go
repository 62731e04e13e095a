package epoch

import "github.com/ethsentry/beacon-transition/beacon-chain/state"

// ProcessSlashingsReset implements process_slashings_reset: the slot this
// epoch's slashings total just vacated, EPOCHS_PER_SLASHINGS_VECTOR epochs
// ahead, is zeroed so it can start accumulating the next cycle's total.
func ProcessSlashingsReset(st *state.BeaconState) error {
	nextEpoch := st.CurrentEpoch() + 1
	st.SetSlashingAtEpoch(nextEpoch, 0)
	return nil
}
