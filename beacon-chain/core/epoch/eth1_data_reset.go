package epoch

import (
	"github.com/ethsentry/beacon-transition/beacon-chain/state"
	"github.com/ethsentry/beacon-transition/config/params"
)

// ProcessEth1DataReset implements process_eth1_data_reset: clears the
// vote accumulator once every EPOCHS_PER_ETH1_VOTING_PERIOD epochs.
func ProcessEth1DataReset(st *state.BeaconState) error {
	cfg := params.BeaconConfig()
	nextEpoch := st.CurrentEpoch() + 1
	if uint64(nextEpoch)%cfg.EpochsPerEth1VotingPeriod == 0 {
		st.Eth1DataVotes = nil
	}
	return nil
}
