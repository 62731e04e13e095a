package epoch

import "github.com/ethsentry/beacon-transition/beacon-chain/state"

// ProcessRandaoMixesReset implements process_randao_mixes_reset: seeds
// next epoch's randao_mixes slot with the mix this epoch just settled on,
// so get_seed has a value to read before any reveal lands in it.
func ProcessRandaoMixesReset(st *state.BeaconState) error {
	currentEpoch := st.CurrentEpoch()
	st.SetRandaoMixAtEpoch(currentEpoch+1, st.RandaoMixAtEpoch(currentEpoch))
	return nil
}
